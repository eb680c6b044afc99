// Package http provides the HTTP transport used by the resource clients. It
// owns connection handling, header assembly, and request/response logging;
// interpretation of response bodies belongs to the rest package.
package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/paykit-io/paykit-go/internal/constants"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method string
	// Path is the resource path relative to the versioned API root, e.g.
	// "payments" or "payments/tr_7/refunds".
	Path string
	// RawQuery is a pre-encoded query string without the leading "?". It
	// takes precedence over Query, which does not preserve insertion order.
	RawQuery string
	Query    url.Values
	// Body is JSON-encoded when non-nil.
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is the HTTP transport for the Paykit API. It sends exactly one
// round trip per request unless retrying is explicitly enabled via
// WithRetryConfig.
type Client struct {
	baseURL    string
	credential string
	httpClient *retryablehttp.Client
	userAgent  []string
	clientInfo string
	logger     Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging. Requires a logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent replaces the leading User-Agent product token.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent[0] = collapseWhitespace(userAgent)
	}
}

// WithVersionString appends a product token to the User-Agent header.
// Whitespace inside the token is collapsed to hyphens.
func WithVersionString(token string) Option {
	return func(c *Client) {
		c.AddVersionString(token)
	}
}

// WithTimeout sets the per-round-trip timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retrying of connection failures
// and 429/5xx responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new transport for the given API base URL. The
// credential is sent as a Bearer token on every request.
func NewClient(baseURL, credential string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand 429/5xx responses back once retries are exhausted instead of
	// swallowing them; their bodies may carry an API error payload.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		credential: credential,
		httpClient: retryClient,
		userAgent: []string{
			"Paykit/" + paykit.Version,
			"Go/" + runtime.Version(),
		},
		clientInfo: runtime.GOOS + "/" + runtime.GOARCH,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// AddVersionString appends a product token to the User-Agent header.
func (c *Client) AddVersionString(token string) {
	c.userAgent = append(c.userAgent, collapseWhitespace(token))
}

// UserAgent returns the composed User-Agent header value.
func (c *Client) UserAgent() string {
	return strings.Join(c.userAgent, " ")
}

// Do sends the request and returns the raw response. Network failures are
// wrapped in *paykit.TransportError; non-2xx statuses are not treated as
// errors here, the response decoder recognizes API error payloads.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestURL := c.requestURL(req)

	var body []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &paykit.EncodeError{Err: err}
		}

		body = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, body)
	if err != nil {
		return nil, &paykit.TransportError{Method: req.Method, URL: requestURL, Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.UserAgent())
	httpReq.Header.Set("X-Paykit-Client-Info", c.clientInfo)

	if c.credential != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.credential)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    requestURL,
			"body":   string(body),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &paykit.TransportError{Method: req.Method, URL: requestURL, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &paykit.TransportError{Method: req.Method, URL: requestURL, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         requestURL,
			"status_code": httpResp.StatusCode,
			"body":        string(data),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path, rawQuery string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, RawQuery: rawQuery})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

func (c *Client) requestURL(req *Request) string {
	requestURL := c.baseURL + "/" + constants.APIVersion + "/" + strings.TrimPrefix(req.Path, "/")

	switch {
	case req.RawQuery != "":
		requestURL += "?" + req.RawQuery
	case len(req.Query) > 0:
		requestURL += "?" + req.Query.Encode()
	}

	return requestURL
}

// collapseWhitespace joins the fields of s with hyphens so the value forms a
// single User-Agent product token.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "-")
}
