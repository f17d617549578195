package backend

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
)

const maxErrorBody = 4096

// ErrUnavailable wraps transport failures: the backend could not be reached
// or did not answer in time.
var ErrUnavailable = errors.New("styling backend unavailable")

// StatusError is returned for any non-2xx backend answer.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s: status=%d body=%s", e.Endpoint, e.StatusCode, e.Body)
}

// Observer receives one sample per backend call. status is 0 when no
// response arrived.
type Observer interface {
	ObserveBackend(endpoint string, status int, d time.Duration)
}

type Client struct {
	baseURL  string
	client   *http.Client
	logger   *zap.Logger
	observer Observer
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends in as JSON (when non-nil) and decodes the answer into out (when
// non-nil). Backends wrap payloads inconsistently, so the first of wrapKeys
// present at the top level of the answer is decoded instead of the whole
// document.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any, wrapKeys ...string) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("%w: nil client", ErrUnavailable)
	}
	endpoint := c.baseURL + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.observe(path, 0, start)
		c.logger.Warn("backend request failed", zap.String("method", method), zap.String("endpoint", path), zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()
	c.observe(path, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		bodyStr := strings.TrimSpace(string(rb))
		c.logger.Warn("backend returned error",
			zap.String("method", method),
			zap.String("endpoint", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", bodyStr),
		)
		return &StatusError{Endpoint: path, StatusCode: resp.StatusCode, Body: bodyStr}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}
	if err := decode(raw, out, wrapKeys...); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) observe(path string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveBackend(path, status, time.Since(start))
	}
}

func decode(raw []byte, out any, wrapKeys ...string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errors.New("empty body")
	}
	if len(wrapKeys) > 0 && raw[0] == '{' {
		var top map[string]json.RawMessage
		if err := json.Unmarshal(raw, &top); err == nil {
			for _, k := range wrapKeys {
				if v, ok := top[k]; ok && len(v) > 0 && string(v) != "null" {
					return json.Unmarshal(v, out)
				}
			}
		}
	}
	return json.Unmarshal(raw, out)
}

// IsUnavailable reports whether err means the backend could not serve the
// request: unreachable, timed out or answered 5xx.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return false
}

// StatusCode extracts the backend status from err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
