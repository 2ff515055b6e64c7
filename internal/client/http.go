package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

const (
	timeout   = 30 * time.Second
	userAgent = "talentscope-client/1.0"
)

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Client talks to a running talentscope API server
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	username string
	password string
}

// clientOptions collects the settings the underlying http.Client is built from
type clientOptions struct {
	proxyURL string
	timeout  time.Duration
	base     *http.Client
	username string
	password string
}

// Option configures a Client. Options may be given in any order.
type Option func(*clientOptions)

// WithProxy routes requests through the given proxy URL. It is ignored when
// WithHTTPClient supplies the client.
func WithProxy(proxyURL string) Option {
	return func(o *clientOptions) {
		o.proxyURL = proxyURL
	}
}

// WithHTTPClient uses a copy of hc for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.base = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithBasicAuth sends HTTP basic auth credentials on every request
func WithBasicAuth(username, password string) Option {
	return func(o *clientOptions) {
		o.username = username
		o.password = password
	}
}

// New creates a client for the server at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	var hc *http.Client
	if o.base != nil {
		cp := *o.base
		hc = &cp
	} else {
		hc = CreateProxyHTTPClient(o.proxyURL)
	}
	if o.timeout > 0 {
		hc.Timeout = o.timeout
	}

	return &Client{
		baseURL:  u,
		http:     hc,
		username: o.username,
		password: o.password,
	}, nil
}

// Estimate asks the server for a prediction without the simulated delay
func (c *Client) Estimate(ctx context.Context, req models.EstimateRequest) (models.Estimate, error) {
	var est models.Estimate
	body, err := json.Marshal(req)
	if err != nil {
		return est, fmt.Errorf("failed to encode request: %w", err)
	}
	err = c.do(ctx, http.MethodPost, "/api/estimate", bytes.NewReader(body), &est)
	return est, err
}

// Summary fetches the headline market counters
func (c *Client) Summary(ctx context.Context) (models.Summary, error) {
	var s models.Summary
	err := c.do(ctx, http.MethodGet, "/api/summary", nil, &s)
	return s, err
}

// Health checks that the server is up
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var h HealthStatus
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	// Set explicitly so the transport leaves the body compressed for ReadResponseBody
	req.Header.Set("Accept-Encoding", "gzip")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := ReadResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &apiErr)
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CreateProxyHTTPClient creates an HTTP client with proxy support
func CreateProxyHTTPClient(proxyURL string) *http.Client {
	hc := CreateHTTPClient()
	if proxyURL == "" {
		return hc
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return hc
	}
	hc.Transport.(*http.Transport).Proxy = http.ProxyURL(proxy)
	return hc
}

// CreateHTTPClient creates a standard HTTP client
func CreateHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}
