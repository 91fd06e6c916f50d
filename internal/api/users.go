package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"jaanmak/internal/domain/users"
)

// Login returns the signed-in user with its bearer token.
func (c *Client) Login(ctx context.Context, cred users.Credentials) (users.User, error) {
	if err := cred.Validate(); err != nil {
		return users.User{}, err
	}
	return c.userCall(ctx, http.MethodPost, "/users/login", "", cred)
}

// Register creates an account. Depending on the server the returned user
// may carry no token until the email is verified.
func (c *Client) Register(ctx context.Context, r users.Registration) (users.User, error) {
	if err := r.Validate(); err != nil {
		return users.User{}, err
	}
	r = r.Normalized()
	return c.userCall(ctx, http.MethodPost, "/users", "", r)
}

func (c *Client) VerifyEmail(ctx context.Context, v users.Verification) (users.User, error) {
	if err := v.Validate(); err != nil {
		return users.User{}, err
	}
	return c.userCall(ctx, http.MethodPost, "/users/verify-email", "", v)
}

func (c *Client) userCall(ctx context.Context, method, path, token string, in any) (users.User, error) {
	var w wireUser
	if err := c.do(ctx, method, path, token, in, &w); err != nil {
		return users.User{}, err
	}
	return w.user()
}

// ForgotPassword requests a reset code by email and returns the server's
// confirmation message.
func (c *Client) ForgotPassword(ctx context.Context, r users.ResetRequest) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/users/forgot-password", "", r, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, r users.PasswordReset) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/users/reset-password", "", r, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateProfile sends the changed fields and returns whatever the server
// echoed back, for merging into the session.
func (c *Client) UpdateProfile(ctx context.Context, token string, u users.ProfileUpdate) (users.Patch, error) {
	var w wireUser
	if err := c.do(ctx, http.MethodPut, "/users/profile", token, u, &w); err != nil {
		return users.Patch{}, err
	}
	return w.patch(), nil
}

// Users lists every account. Admin only.
func (c *Client) Users(ctx context.Context, token string) ([]users.User, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList(raw, "user", c.logger, wireUser.user), nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), token, nil, nil)
}
