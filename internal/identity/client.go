// Package identity is a REST client for the external identity provider. The
// provider owns password verification and issues opaque bearer tokens; this
// client never inspects token contents.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error is a failure reported by the provider. Rejected reports whether the
// provider itself refused the request (as opposed to being unreachable).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("identity provider unreachable: %s", e.Message)
	}
	return fmt.Sprintf("identity provider rejected request: %d %s", e.Status, e.Message)
}

// Rejected reports whether the provider returned a 4xx response, meaning the
// credentials or token were refused rather than the call failing.
func (e *Error) Rejected() bool {
	return e.Status >= 400 && e.Status < 500
}

// Client talks to a GoTrue-style identity API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a provider client with a bounded request timeout. A
// provider that does not answer within the timeout is treated as a failure,
// never as success.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID string `json:"id"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

type errorResponse struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

// SignUp creates a new identity and returns its stable external id.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	var resp userResponse
	err := c.post(ctx, "/signup", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// SignIn authenticates credentials and returns the external id and an opaque
// access token.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, string, error) {
	var resp tokenResponse
	err := c.post(ctx, "/token?grant_type=password", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", "", err
	}
	return resp.User.ID, resp.AccessToken, nil
}

// Verify resolves a bearer token to the external id it was issued for.
func (c *Client) Verify(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var resp userResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body errorResponse
		_ = json.Unmarshal(raw, &body)
		msg := body.Message
		if msg == "" {
			msg = body.ErrorDescription
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Message: fmt.Sprintf("malformed provider response: %v", err)}
	}
	return nil
}
