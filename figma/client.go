package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dsdoc/dsdoc"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.figma.com"

// Client calls the design-tool REST API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	client  *http.Client
	limiter *RateLimiter
	token   string
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithRateLimit sets the per-minute request budget.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		c.limiter = NewRateLimiter(perMinute)
	}
}

// NewClient creates a Client authenticating with the given personal access
// token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		client:  http.DefaultClient,
		limiter: NewRateLimiter(DefaultRequestsPerMinute),
		token:   token,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Nodes fetches the document subtree and component side-table for one node.
func (c *Client) Nodes(ctx context.Context, fileKey, nodeID string) (*NodesResponse, error) {
	if c.token == "" {
		return nil, dsdoc.Errorf(dsdoc.EUNAUTHORIZED, "API token required")
	}
	if fileKey == "" || nodeID == "" {
		return nil, dsdoc.Errorf(dsdoc.EINVALID, "file key and node id required")
	}
	if err := c.limiter.Allow(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/files/%s/nodes?ids=%s",
		c.baseURL, url.PathEscape(fileKey), url.QueryEscape(nodeID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Figma-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return nil, err
	}

	var nodes NodesResponse
	if err := json.NewDecoder(resp.Body).Decode(&nodes); err != nil {
		return nil, dsdoc.Errorf(dsdoc.EINVALID, "invalid nodes response: %v", err)
	}
	return &nodes, nil
}

// ExtractLayout fetches the target node and transforms it into a layout
// schema in one call.
func (c *Client) ExtractLayout(ctx context.Context, fileKey, nodeID string) (*Layout, error) {
	resp, err := c.Nodes(ctx, fileKey, nodeID)
	if err != nil {
		return nil, err
	}
	layout, err := ExtractLayout(resp, nodeID)
	if err != nil {
		return nil, err
	}
	layout.FileKey = fileKey
	return layout, nil
}

// responseError maps a non-2xx API response to a coded error.
func responseError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return dsdoc.Errorf(dsdoc.EUNAUTHORIZED, "API rejected the token (HTTP %d)", resp.StatusCode)
	case http.StatusNotFound:
		return dsdoc.Errorf(dsdoc.ENOTFOUND, "file or node not found")
	case http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(resp)}
	default:
		return dsdoc.Errorf(dsdoc.EINTERNAL, "API error (HTTP %d)", resp.StatusCode)
	}
}

// retryAfter reads the Retry-After hint in seconds, when the upstream
// supplies one.
func retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
