package booksapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
	"github.com/custodia-labs/books-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/books-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CatalogClient = (*Client)(nil)

const (
	// DefaultTimeout is the default request timeout.
	DefaultTimeout = domain.DefaultCatalogTimeout

	// PublishByDateParam is the query parameter carrying the date filter.
	PublishByDateParam = "publish_by_date"

	authorSegment = "author"
	titleSegment  = "books"

	userAgent = "books-mcp"
)

// Client queries the Books API.
type Client struct {
	baseURL *url.URL
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a client for the catalog rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog base URL %q: %v", domain.ErrInvalidInput, baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: catalog base URL %q must be absolute", domain.ErrInvalidInput, baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""

	c := &Client{
		baseURL: u,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchByAuthor runs GET {base}/author/{term}.
func (c *Client) FetchByAuthor(ctx context.Context, q domain.SearchQuery) ([]domain.BookRecord, error) {
	return c.fetch(ctx, authorSegment, q)
}

// FetchByTitle runs GET {base}/books/{term}.
func (c *Client) FetchByTitle(ctx context.Context, q domain.SearchQuery) ([]domain.BookRecord, error) {
	return c.fetch(ctx, titleSegment, q)
}

// endpoint builds the request URL. The term is placed into the path as is;
// net/url escapes it when the URL is serialised.
func (c *Client) endpoint(segment string, q domain.SearchQuery) string {
	u := *c.baseURL
	u.Path = u.Path + "/" + segment + "/" + q.Term
	if q.PublishByDate != nil {
		values := url.Values{}
		values.Set(PublishByDateParam, *q.PublishByDate)
		u.RawQuery = values.Encode()
	}
	return u.String()
}

func (c *Client) fetch(ctx context.Context, segment string, q domain.SearchQuery) ([]domain.BookRecord, error) {
	endpoint := c.endpoint(segment, q)

	// One client per call; closed on every exit path.
	client := &http.Client{
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		},
		Timeout: c.timeout,
	}
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("GET %s", endpoint)
	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", segment, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	logger.Debug("GET %s -> %d (%d bytes, %s)", endpoint, resp.StatusCode, len(body), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return decodeRecords(body)
}

// decodeRecords parses a JSON array of objects. A JSON null decodes to
// an empty list.
func decodeRecords(body []byte) ([]domain.BookRecord, error) {
	var records []domain.BookRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}
	if records == nil {
		records = []domain.BookRecord{}
	}
	return records, nil
}
