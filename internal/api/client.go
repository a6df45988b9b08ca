package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"
)

const DefaultTimeout = 10 * time.Second

// Session is the part of the dashboard session the client needs: the bearer
// token to send, and a way to sign out when the backend answers 401.
type Session interface {
	Token() string
	Invalidate(ctx context.Context) error
}

type Client struct {
	http    *resty.Client
	session Session
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(logger.StandardLogger())

	return &Client{http: c}
}

// For returns a client bound to one session. The underlying HTTP client is shared.
func (c *Client) For(s Session) *Client {
	return &Client{http: c.http, session: s}
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.SetAuthToken(token)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		c.signOut(ctx)
		return nil, fmt.Errorf("%s %s: %w", method, path, newAPIError(resp.StatusCode(), resp.Body()))
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%s %s: %w", method, path, newAPIError(resp.StatusCode(), resp.Body()))
	}
	return resp, nil
}

func (c *Client) signOut(ctx context.Context) {
	if c.session == nil {
		return
	}
	logger.Warn("Backend answered 401, clearing session")
	if err := c.session.Invalidate(ctx); err != nil {
		logger.Errorf("Could not clear session after 401: %s", err.Error())
	}
}

// do sends a request and decodes the envelope's data into out, when out is not nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s %s: json parsing error %w", method, path, err)
	}
	if !env.Success {
		apiErr := newAPIError(resp.StatusCode(), raw)
		if apiErr.Message == "" {
			apiErr.Message = env.Message
		}
		return fmt.Errorf("%s %s: %w", method, path, apiErr)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: json parsing error %w", method, path, err)
	}
	return nil
}

// fetchList never fails outright: errors are logged and reported in Result.Err
// next to an empty collection.
func fetchList[W any, T any](ctx context.Context, c *Client, path string, convert func(W) T) Result[[]T] {
	var wire []W
	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		logger.WithError(err).WithField("path", path).Warn("List fetch failed, returning empty result")
		return Result[[]T]{Data: []T{}, Err: err}
	}

	items := make([]T, 0, len(wire))
	for _, w := range wire {
		items = append(items, convert(w))
	}
	return Result[[]T]{Data: items}
}
