package trailsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the apitrail service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new apitrail client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns an authenticated session for it.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	body, err := jsonBody(RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/register", body)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusCreated); err != nil {
		return nil, err
	}

	return newSession(c, auth), nil
}

// Login authenticates an existing account and returns a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := jsonBody(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, auth), nil
}

// NewSessionFromToken creates an authenticated session from a stored token.
// This is useful when the token survived a client restart. No check happens
// here; an expired token surfaces as 401 on the first call.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
