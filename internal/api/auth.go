package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wellywell/washboard/internal/types"
)

const loginPath = "/auth/washerman/login"

// Login posts credentials and returns the backend's answer as is. Deciding
// whether the answer is a successful login is up to the session.
func (c *Client) Login(ctx context.Context, username, password string) (*types.AuthResponse, error) {
	resp, err := c.send(ctx, http.MethodPost, loginPath, loginBody{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var auth types.AuthResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return nil, fmt.Errorf("login: json parsing error %w", err)
	}
	return &auth, nil
}
