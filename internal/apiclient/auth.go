package apiclient

import (
	"context"
	"net/http"

	"ekthaa/internal/domain"
)

// Register creates a business account. The issued token is stored when the
// credential provider supports it.
func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, &call{method: http.MethodPost, path: "/auth/register", body: in}, &resp); err != nil {
		return nil, err
	}
	if err := c.storeToken(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates with phone and password and stores the issued token.
func (c *Client) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, &call{method: http.MethodPost, path: "/auth/login", body: in}, &resp); err != nil {
		return nil, err
	}
	if err := c.storeToken(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the current user.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var resp struct {
		User *domain.User `json:"user"`
	}
	if err := c.do(ctx, &call{method: http.MethodGet, path: "/auth/me"}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, domain.ErrNotFound
	}
	return resp.User, nil
}

// Logout tells the backend and forgets the local token either way.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, &call{method: http.MethodPost, path: "/auth/logout"}, nil)
	if c.creds != nil {
		if clearErr := c.creds.ClearToken(ctx); clearErr != nil && err == nil {
			err = clearErr
		}
	}
	return err
}

func (c *Client) storeToken(ctx context.Context, resp *domain.AuthResponse) error {
	setter, ok := c.creds.(TokenSetter)
	if !ok || resp.Token == "" {
		return nil
	}
	return setter.SetToken(ctx, resp.Token, &resp.User)
}
