package client

import (
	"context"
	"net/http"

	"github.com/Basantrajshakti/taskboard/internal/auth"
)

// SignUp registers a new user and stores the returned session token on the
// client.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (*auth.SessionResponse, error) {
	var resp auth.SessionResponse
	req := auth.SignUpRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", &req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// SignIn authenticates with credentials and stores the returned session token
// on the client.
func (c *Client) SignIn(ctx context.Context, email, password string) (*auth.SessionResponse, error) {
	var resp auth.SessionResponse
	req := auth.SignInRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", &req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Session fetches the identity bound to the current token.
func (c *Client) Session(ctx context.Context) (*auth.SessionResponse, error) {
	var resp auth.SessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
