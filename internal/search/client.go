package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/net/proxy"

	"github.com/nao1215/tripscout/internal/extract"
	"github.com/nao1215/tripscout/internal/model"
)

// Default client settings.
const (
	// DefaultEndpoint is the search page requested for each query.
	DefaultEndpoint = "https://www.google.com/search"

	// DefaultLanguage is sent as the hl parameter so result markup is stable.
	DefaultLanguage = "en"

	// DefaultTimeout bounds the whole request, including reading the body.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent resembles a browser to avoid trivial bot blocking.
	DefaultUserAgent = "Mozilla/5.0"

	// DefaultMaxResults is the number of suggestions kept per search.
	DefaultMaxResults = 5

	// DefaultMaxBodySize caps how much of the response is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
)

// Client fetches search-results pages and extracts suggestions from them.
type Client struct {
	// httpClient performs the request. Built in NewClient unless supplied.
	httpClient *http.Client

	endpoint    string
	language    string
	userAgent   string
	timeout     time.Duration
	maxResults  int
	maxBodySize int64

	// proxyAddress routes the request through a SOCKS5 proxy when set.
	proxyAddress string

	extractor extract.Extractor
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the search endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithLanguage sets the hl parameter. An empty language omits it.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMaxResults sets how many suggestions Search returns at most.
func WithMaxResults(n int) Option {
	return func(c *Client) {
		c.maxResults = n
	}
}

// WithMaxBodySize sets the maximum number of body bytes read.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithExtractor sets the extraction strategy.
func WithExtractor(e extract.Extractor) Option {
	return func(c *Client) {
		c.extractor = e
	}
}

// WithProxy routes requests through the SOCKS5 proxy at "host:port".
// The address is validated by NewClient.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// WithHTTPClient supplies the HTTP client. WithProxy is ignored when set.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client with defaults overridden by opts.
//
// Design decision: We don't contact the endpoint in the constructor. Object
// creation stays separate from network activity, and a failed search is a
// normal, recoverable outcome of Search rather than a setup error.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		endpoint:    DefaultEndpoint,
		language:    DefaultLanguage,
		userAgent:   DefaultUserAgent,
		timeout:     DefaultTimeout,
		maxResults:  DefaultMaxResults,
		maxBodySize: DefaultMaxBodySize,
		extractor:   extract.NewRegexExtractor(),
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, err := url.Parse(c.endpoint); err != nil {
		return nil, fmt.Errorf("invalid search endpoint %q: %w", c.endpoint, err)
	}

	if c.httpClient == nil {
		transport, err := c.newTransport()
		if err != nil {
			return nil, err
		}
		c.httpClient = &http.Client{
			Transport: transport,
			Timeout:   c.timeout,
		}
	}

	return c, nil
}

// newTransport builds the HTTP transport, dialing through the proxy if one
// is configured.
func (c *Client) newTransport() (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // DefaultTransport is always *http.Transport

	if c.proxyAddress == "" {
		return transport, nil
	}

	if !IsValidProxyAddress(c.proxyAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, c.proxyAddress)
	}

	// Nil auth: credentials, if any, belong to the proxy configuration itself.
	dialer, err := proxy.SOCKS5("tcp", c.proxyAddress, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
	}

	transport.Proxy = nil
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		transport.DialContext = cd.DialContext
	} else {
		transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		}
	}
	return transport, nil
}

// IsValidProxyAddress checks that address is "host:port" with a port in 1-65535.
func IsValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 65535
}

// SearchURL returns the request URL for query.
func (c *Client) SearchURL(query string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	values := u.Query()
	if c.language != "" {
		values.Set("hl", c.language)
	}
	values.Set("q", query)
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// Search requests the results page for query and extracts suggestions.
//
// Any failure to build, send, receive or decode the request is returned as a
// *FetchError. A page with no recognizable results is not a failure; it
// yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]model.Suggestion, error) {
	searchURL, err := c.SearchURL(query)
	if err != nil {
		return nil, &FetchError{Query: query, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	page, err := c.fetch(ctx, searchURL)
	if err != nil {
		c.logger.Warn("search request failed",
			"url", searchURL,
			"error", err,
		)
		return nil, &FetchError{Query: query, URL: searchURL, Err: err}
	}

	suggestions := c.extractor.Extract(page, c.maxResults)

	c.logger.Debug("search completed",
		"url", searchURL,
		"bytes", len(page),
		"suggestions", len(suggestions),
	)

	return suggestions, nil
}

// fetch performs the GET request and returns the decoded body.
func (c *Client) fetch(ctx context.Context, searchURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck // best effort
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return "", err
	}
	if int64(len(body)) == c.maxBodySize {
		body = trimIncompleteRune(body)
	}

	return decodeBody(body)
}
