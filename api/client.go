// File: tahanansafe/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tahanansafe/utils"
)

// Client wraps the backend's mobile REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// New creates a client with sensible defaults. requestsPerMin paces outgoing
// calls so a misbehaving loop cannot hammer the backend.
func New(baseURL string, timeout time.Duration, requestsPerMin int) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if requestsPerMin <= 0 {
		requestsPerMin = 100
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMin)), requestsPerMin),
	}
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string { return c.baseURL }

type requestOptions struct {
	bearer  string
	headers map[string]string
}

// Option customizes a single request.
type Option func(*requestOptions)

// WithBearer attaches an Authorization: Bearer header.
func WithBearer(token string) Option {
	return func(o *requestOptions) { o.bearer = token }
}

// WithHeader attaches an arbitrary header.
func WithHeader(key, value string) Option {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// Request performs a JSON API call. A nil body sends no payload. The returned
// raw message is the parsed-as-JSON response body; non-JSON responses are
// wrapped as {"message": <raw text>} so callers always receive JSON.
func (c *Client) Request(ctx context.Context, method, path string, body any, opts ...Option) (json.RawMessage, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, reader, contentType, opts...)
}

// RequestMultipart performs a multipart form upload. The Content-Type carries
// the form's boundary; everything else behaves like Request.
func (c *Client) RequestMultipart(ctx context.Context, method, path string, form *MultipartForm, opts ...Option) (json.RawMessage, error) {
	return c.do(ctx, method, path, form.Reader(), form.ContentType(), opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, opts ...Option) (json.RawMessage, error) {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if options.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+options.bearer)
	}
	for key, value := range options.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// The request never reached the server. A wrong LAN address is the most
		// common field failure for a backend reached from a physical device, so
		// name the configured base URL in the diagnostic.
		utils.GetLogger().Warn("api: request failed before reaching server",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("could not reach the server at %s: check API_BASE_URL and your network: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, respBody, isJSON)
		utils.GetLogger().Debug("api: server rejected request",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	if isJSON {
		return json.RawMessage(respBody), nil
	}

	wrapped, err := json.Marshal(map[string]string{"message": string(respBody)})
	if err != nil {
		return nil, fmt.Errorf("failed to wrap response: %w", err)
	}
	return json.RawMessage(wrapped), nil
}
