package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/wellywell/washboard/internal/types"
)

func washermanPath(id int) string {
	return "/admin/washermen/" + strconv.Itoa(id)
}

func (c *Client) ListWashermen(ctx context.Context) Result[[]types.Washerman] {
	return fetchList(ctx, c, "/admin/washermen", wireWasherman.toWasherman)
}

func (c *Client) CreateWasherman(ctx context.Context, in types.WashermanInput) (*types.Washerman, error) {
	return c.writeWasherman(ctx, http.MethodPost, "/auth/washerman/signup", in)
}

// UpdateWasherman leaves the password untouched when in.Password is empty.
func (c *Client) UpdateWasherman(ctx context.Context, id int, in types.WashermanInput) (*types.Washerman, error) {
	return c.writeWasherman(ctx, http.MethodPut, washermanPath(id), in)
}

func (c *Client) DeleteWasherman(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, washermanPath(id), nil, nil)
}

func (c *Client) writeWasherman(ctx context.Context, method, path string, in types.WashermanInput) (*types.Washerman, error) {
	var w *wireWasherman
	if err := c.do(ctx, method, path, in, &w); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	washerman := w.toWasherman()
	return &washerman, nil
}
