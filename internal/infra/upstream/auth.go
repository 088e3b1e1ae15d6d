package upstream

import (
	"context"
	"net/http"
)

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/user/login", "", loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *Client) Signup(ctx context.Context, username, email, password string) error {
	return c.do(ctx, http.MethodPost, "/user/signup", "", signupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
}
