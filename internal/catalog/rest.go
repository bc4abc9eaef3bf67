package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/Rohitwap/product-browser/internal/metrics"
)

const (
	defaultBaseURL = "https://dummyjson.com"

	listPath   = "/products"
	searchPath = "/products/search"
)

// RESTClient implements Client against the catalog's public REST API.
type RESTClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// RESTOption configures the RESTClient.
type RESTOption func(*RESTClient)

// WithBaseURL overrides the default catalog API base URL.
func WithBaseURL(u string) RESTOption {
	return func(c *RESTClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) RESTOption {
	return func(c *RESTClient) {
		c.client = hc
	}
}

// WithRateLimit installs a token bucket that gates every outgoing call.
// The catalog is a shared public service; this keeps a burst of UI
// activity from hammering it.
func WithRateLimit(perSecond float64, burst int) RESTOption {
	return func(c *RESTClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewRESTClient creates a catalog API client.
func NewRESTClient(opts ...RESTOption) *RESTClient {
	c := &RESTClient{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List implements Client.List by querying the listing endpoint.
func (c *RESTClient) List(ctx context.Context, req ListRequest) (*ProductPage, error) {
	body, err := c.get(ctx, "list", listPath, listParams(req.Limit, req.Skip))
	if err != nil {
		return nil, err
	}

	page := &ProductPage{}
	if err := json.Unmarshal(body, page); err != nil {
		return nil, fmt.Errorf("parsing listing response: %w", err)
	}
	return page, nil
}

// Search implements Client.Search by querying the search endpoint.
func (c *RESTClient) Search(ctx context.Context, req SearchRequest) (*ProductPage, error) {
	params := url.Values{}
	params.Set("q", req.Query)
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}

	body, err := c.get(ctx, "search", searchPath, params)
	if err != nil {
		return nil, err
	}

	page := &ProductPage{}
	if err := json.Unmarshal(body, page); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	return page, nil
}

// ListRaw implements Client.ListRaw. The body comes back exactly as the
// upstream sent it so the proxy endpoint can serve it verbatim.
func (c *RESTClient) ListRaw(ctx context.Context, limit, skip int) ([]byte, error) {
	return c.get(ctx, "list", listPath, listParams(limit, skip))
}

func listParams(limit, skip int) url.Values {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if skip > 0 {
		params.Set("skip", strconv.Itoa(skip))
	}
	return params
}

// get performs one instrumented GET against the catalog API and returns
// the response body on a 200, or an error for transport failures and
// non-success statuses alike.
func (c *RESTClient) get(ctx context.Context, operation, path string, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	metrics.CatalogCallsTotal.WithLabelValues(operation).Inc()
	start := time.Now()

	u := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("executing catalog request: %w", err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogErrorsTotal.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("catalog API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
