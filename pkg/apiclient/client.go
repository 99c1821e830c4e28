package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

const maxErrorBody = 512

var errEmptyResponse = errors.New("empty response body")

// Observer receives timing information for every upstream call.
type Observer interface {
	ObserveUpstreamCall(resource, method string, success bool, duration time.Duration)
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each upstream call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger attaches a logger for failed calls.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// Client issues JSON requests against the upstream records API. Every failure, transport or
// non-2xx, is reported as an UPSTREAM_ERROR without distinguishing the status code.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

// New constructs a Client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches path and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body to path and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put sends body to path and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete removes the resource at path. Any response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	resource := resourceLabel(path)

	start := time.Now()
	err := c.roundTrip(ctx, method, path, body, out)
	if c.observer != nil {
		c.observer.ObserveUpstreamCall(resource, method, err == nil, time.Since(start))
	}
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("%s %s failed", method, path))
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return errEmptyResponse
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// resourceLabel keeps metric cardinality bounded by dropping numeric ids.
func resourceLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || isNumeric(part) {
			continue
		}
		labels = append(labels, part)
	}
	if len(labels) == 0 {
		return "root"
	}
	return strings.Join(labels, "_")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
