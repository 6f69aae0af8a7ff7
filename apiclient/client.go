// Package apiclient is the outbound HTTP client used by client programs to
// talk to the storefront API. It attaches the persisted bearer token and
// tears down the session on any unauthorized response.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"engistore/appstate"
)

// RetryAttempts is how many times a failed request may be retried.
// TODO: wire retries into do once idempotent calls are tagged.
const RetryAttempts = 3

const requestTimeout = 10 * time.Second

// APIError carries the HTTP status and server message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    appstate.SessionStore

	// OnUnauthorized fires after the session is cleared on a 401. The
	// embedder decides what to do next (typically navigate to login).
	OnUnauthorized func()
}

func New(baseURL string, session appstate.SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		session: session,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.session != nil {
		if token, ok := c.session.Get(appstate.SessionKeyToken); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearSession()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// clearSession evicts the persisted token and profile. Any 401 means the
// session is no longer valid, regardless of which call hit it.
func (c *Client) clearSession() {
	if c.session == nil {
		return
	}
	c.session.Delete(appstate.SessionKeyToken)
	c.session.Delete(appstate.SessionKeyProfile)
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Message == "" {
		return "request failed"
	}
	return payload.Message
}
