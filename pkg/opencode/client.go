package opencode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrBackendUnavailable wraps connection-level failures so callers can
// map them to a backend_unavailable error without string matching.
var ErrBackendUnavailable = errors.New("opencode backend unavailable")

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("opencode backend returned %d: %s", e.StatusCode, e.Body)
}

// Client talks to one opencode backend over HTTP. Request deadlines are
// the caller's responsibility via context; the embedded http.Client has
// no timeout so the SSE stream can run indefinitely.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// BaseURL returns the backend base URL this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Info fetches the backend's /info payload. Doubles as the health probe.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	var info Info
	if err := c.doJSON(ctx, http.MethodGet, "/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Ping checks liveness with a HEAD /info, cheaper than a full Info.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/info", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// CreateSession creates a backend session.
func (c *Client) CreateSession(ctx context.Context, title string) (*Session, error) {
	body := map[string]string{}
	if title != "" {
		body["title"] = title
	}
	var session Session
	if err := c.doJSON(ctx, http.MethodPost, "/session", body, &session); err != nil {
		return nil, err
	}
	if session.ID == "" {
		return nil, fmt.Errorf("backend created session without an id")
	}
	return &session, nil
}

// GetSession fetches one backend session, reporting whether the
// backend still retains it.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	path := "/session/" + url.PathEscape(sessionID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Prompt dispatches a turn into a backend session. The context should
// carry the long prompt deadline, not the default request timeout.
func (c *Client) Prompt(ctx context.Context, sessionID string, req PromptRequest) (*PromptResponse, error) {
	var resp PromptResponse
	path := "/session/" + url.PathEscape(sessionID) + "/prompt"
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Command forwards a slash command to a backend session.
func (c *Client) Command(ctx context.Context, sessionID string, req CommandRequest) error {
	path := "/session/" + url.PathEscape(sessionID) + "/command"
	return c.doJSON(ctx, http.MethodPost, path, req, nil)
}

// Shell forwards a shell invocation to a backend session.
func (c *Client) Shell(ctx context.Context, sessionID string, req ShellRequest) error {
	path := "/session/" + url.PathEscape(sessionID) + "/shell"
	return c.doJSON(ctx, http.MethodPost, path, req, nil)
}

// Abort interrupts the in-flight turn of a backend session.
func (c *Client) Abort(ctx context.Context, sessionID string) error {
	path := "/session/" + url.PathEscape(sessionID) + "/abort"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

// doJSON performs a request with a JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", method, path, context.DeadlineExceeded)
		}
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
