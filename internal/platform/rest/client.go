// Package rest is the shared HTTP transport under every resource service:
// bearer auth, outbound rate limiting, pagination-header decoding, and the
// API's error taxonomy.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/ledgerline/booksclient/internal/apperrors"
)

// TokenFunc returns the current access token, or "" when logged out. It is
// called at request time so a token refresh or logout takes effect
// immediately.
type TokenFunc func() string

// Options configures a Client.
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec int
	Token          TokenFunc
	Logger         *slog.Logger
}

// Client issues requests against the API. Safe for concurrent use.
type Client struct {
	base   string
	httpc  *http.Client
	token  TokenFunc
	lim    *limiter.Limiter
	logger *slog.Logger
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 20
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	rate := limiter.Rate{Period: time.Second, Limit: int64(opts.RequestsPerSec)}

	return &Client{
		base:   strings.TrimRight(opts.BaseURL, "/"),
		httpc:  &http.Client{Timeout: opts.Timeout},
		token:  opts.Token,
		lim:    limiter.New(memory.NewStore(), rate),
		logger: opts.Logger,
	}
}

// Get issues a GET and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// GetList issues a GET against a list endpoint and returns the pagination
// metadata read from the response headers.
func (c *Client) GetList(ctx context.Context, path string, query url.Values, out any) (Meta, error) {
	header, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	if err != nil {
		return Meta{}, err
	}
	return ParseMeta(header), nil
}

// Post issues a POST with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

// Put issues a PUT with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

// Delete issues a DELETE. The API's response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

// Upload posts a multipart file. progress, when non-nil, is called with the
// running byte count as the body streams out.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, extra map[string]string, progress func(sent int64), out any) error {
	if err := c.waitLimit(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("rest: build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("rest: read upload: %w", err)
	}
	for k, v := range extra {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("rest: build multipart body: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("rest: build multipart body: %w", err)
	}

	var body io.Reader = &buf
	if progress != nil {
		body = &progressReader{r: &buf, fn: progress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, body)
	if err != nil {
		return fmt.Errorf("rest: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	return c.send(req, out)
}

type progressReader struct {
	r    io.Reader
	fn   func(sent int64)
	sent int64
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent)
	}
	return n, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	if err := c.waitLimit(ctx); err != nil {
		return nil, err
	}

	u := c.base + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("rest: encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("rest: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	var header http.Header
	err = c.sendHeader(req, out, &header)
	return header, err
}

func (c *Client) authorize(req *http.Request) {
	if c.token == nil {
		return
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

func (c *Client) send(req *http.Request, out any) error {
	var header http.Header
	return c.sendHeader(req, out, &header)
}

func (c *Client) sendHeader(req *http.Request, out any, header *http.Header) error {
	requestID := uuid.NewString()
	logger := c.logger.With(
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Error("Request failed", slog.String("error", err.Error()))
		return fmt.Errorf("rest: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	logger.Debug("Request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	*header = resp.Header

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("rest: decode response: %w", err)
		}
	}
	return nil
}

// apiError is the API's failure body: either a flat error string or a
// field-keyed errors map.
type apiError struct {
	Error  string         `json:"error"`
	Errors map[string]any `json:"errors"`
}

func decodeAPIError(status int, raw []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	}

	var body apiError
	if err := json.Unmarshal(raw, &body); err == nil {
		if len(body.Errors) > 0 {
			fields := make(map[string]string, len(body.Errors))
			for k, v := range body.Errors {
				fields[k] = fmt.Sprintf("%v", v)
			}
			return apperrors.NewValidationError(fields)
		}
		if body.Error != "" {
			return fmt.Errorf("rest: api error (status %d): %s", status, body.Error)
		}
	}
	return fmt.Errorf("rest: api error (status %d)", status)
}

func (c *Client) waitLimit(ctx context.Context) error {
	for {
		lctx, err := c.lim.Get(ctx, "outbound")
		if err != nil {
			return fmt.Errorf("rest: rate limiter: %w", err)
		}
		if !lctx.Reached {
			return nil
		}
		wait := time.Until(time.Unix(lctx.Reset, 0))
		if wait <= 0 {
			wait = 10 * time.Millisecond
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}
