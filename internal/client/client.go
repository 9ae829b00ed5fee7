// Package client is the HTTP gateway to the user-registration API. It
// implements the four CRUD calls the orchestrator needs and nothing
// else — no retries, no caching, one attempt per call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aanand-mishra/user-registration/internal/types"
)

// Client talks to the /users endpoints of one API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL (for example
// "http://localhost:8082/api"). A non-positive timeout falls back to
// 10 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// List fetches every user from the server.
func (c *Client) List(ctx context.Context) ([]types.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users", nil)
	if err != nil {
		return nil, fmt.Errorf("list users: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer drain(resp.Body)

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []types.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("list users: decode body: %w", err)
	}
	return users, nil
}

// Create POSTs a new user record.
func (c *Client) Create(ctx context.Context, user types.User) error {
	return c.send(ctx, http.MethodPost, c.baseURL+"/users", &user, "create user")
}

// Update PUTs the full record for an existing user.
func (c *Client) Update(ctx context.Context, user types.User) error {
	return c.send(ctx, http.MethodPut, c.userURL(user.ID), &user, "update user")
}

// Delete removes the user with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, c.userURL(id), nil, "delete user")
}

func (c *Client) userURL(id string) string {
	return c.baseURL + "/users/" + url.PathEscape(id)
}

// send issues a request with an optional JSON body and succeeds only on
// a 2xx response. A non-2xx status is a failure — the server said no —
// exactly like a network fault, just with a better error message.
func (c *Client) send(ctx context.Context, method, u string, body *types.User, op string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drain(resp.Body)

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}

// drain reads the body to completion before closing so the underlying
// connection can be reused.
func drain(body io.ReadCloser) {
	io.Copy(io.Discard, body)
	body.Close()
}
