package quizapi

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

	"github.com/google/uuid"

	"github.com/abhisek/mathcards/internal/quiz"
)

// DefaultTimeout bounds a single request when no HTTP client is supplied.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// StartResponse is the reply to a session start.
type StartResponse struct {
	SessionID string `json:"session_id"`
	Total     int    `json:"total"`
}

// Step is the reply to next and answer calls. Exactly one of Operation
// (Finished false) or Results (Finished true) is meaningful. Index and
// Total are zero when the server omits them.
type Step struct {
	Finished   bool           `json:"finished"`
	Operation  *quiz.Problem  `json:"operation,omitempty"`
	Index      int            `json:"index,omitempty"`
	Total      int            `json:"total,omitempty"`
	Results    []quiz.Outcome `json:"results,omitempty"`
	LastResult *quiz.Outcome  `json:"last_result,omitempty"`
}

// Client talks to the quiz service over HTTP JSON.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client = &http.Client{Timeout: d}
	}
}

// New creates a Client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Start creates a new server-side session.
func (c *Client) Start(ctx context.Context, cfg quiz.Config) (*StartResponse, error) {
	var out StartResponse
	if err := c.do(ctx, "start", http.MethodPost, "/api/start", cfg, &out); err != nil {
		return nil, err
	}
	if out.SessionID == "" {
		return nil, &APIError{Op: "start", Err: fmt.Errorf("response has no session_id")}
	}
	return &out, nil
}

// Next fetches the next step of a session.
func (c *Client) Next(ctx context.Context, sessionID string) (*Step, error) {
	var out Step
	if err := c.do(ctx, "next", http.MethodGet, "/api/next/"+url.PathEscape(sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Answer submits an answer for the current problem of a session.
func (c *Client) Answer(ctx context.Context, sessionID string, answer int) (*Step, error) {
	body := struct {
		Answer int `json:"answer"`
	}{answer}

	var out Step
	if err := c.do(ctx, "answer", http.MethodPost, "/api/answer/"+url.PathEscape(sessionID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &APIError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Detail:     stringField(raw, "detail"),
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	// The service reports unknown sessions as {"error": "..."} with 200.
	if msg := stringField(raw, "error"); msg != "" {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Detail: msg}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// stringField returns the named top-level field of a JSON object when it
// is a non-empty string.
func stringField(raw []byte, name string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(fields[name], &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
