package api

import (
	"context"
	"net/http"

	"github.com/mperko/cjenik/internal/model"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    model.Profile `json:"user"`
	Message string        `json:"message"`
}

// Login exchanges credentials for a token and profile. A 2xx body with
// success=false is a rejection; its message is surfaced.
func (c *Client) Login(ctx context.Context, email, password string) (string, model.Profile, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/login", credentialsRequest{Email: email, Password: password}, &resp, unauthed)
	if err != nil {
		return "", model.Profile{}, err
	}
	if !resp.Success {
		return "", model.Profile{}, rejected(resp.Message)
	}
	return resp.Token, resp.User, nil
}

// Signup registers a new account. The response shape matches Login.
func (c *Client) Signup(ctx context.Context, email, password string) (string, model.Profile, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/signup", credentialsRequest{Email: email, Password: password}, &resp, unauthed)
	if err != nil {
		return "", model.Profile{}, err
	}
	if !resp.Success {
		return "", model.Profile{}, rejected(resp.Message)
	}
	return resp.Token, resp.User, nil
}

// Logout asks the server to invalidate the current token. The response
// body is ignored; callers treat failures as non-fatal.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, authed)
}

type profileResponse struct {
	Success bool          `json:"success"`
	User    model.Profile `json:"user"`
}

// Profile fetches the current profile. Doubles as token validation: a 401
// surfaces as ErrUnauthorized.
func (c *Client) Profile(ctx context.Context) (model.Profile, error) {
	var resp profileResponse
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &resp, authed); err != nil {
		return model.Profile{}, err
	}
	if !resp.Success {
		return model.Profile{}, rejected("")
	}
	return resp.User, nil
}

type settingRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type settingResponse struct {
	Success bool `json:"success"`
	Setting struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"setting"`
	Message string `json:"message"`
}

// UpdateSetting posts one preference change and returns the confirmed
// type/value pair the server echoed back.
func (c *Client) UpdateSetting(ctx context.Context, settingType, value string) (string, string, error) {
	var resp settingResponse
	err := c.do(ctx, http.MethodPost, "/settings", settingRequest{Type: settingType, Value: value}, &resp, authed)
	if err != nil {
		return "", "", err
	}
	if !resp.Success {
		return "", "", rejected(resp.Message)
	}
	return resp.Setting.Type, resp.Setting.Value, nil
}
