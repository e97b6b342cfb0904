package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the GitHub REST API root
	DefaultBaseURL = "https://api.github.com"

	defaultPerPage  = 100
	defaultMaxPages = 10
)

// Client wraps the GitHub REST API with rate limiting
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	perPage     int
	maxPages    int
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API root (tests, GitHub Enterprise)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPerPage sets the page size used when listing repositories
func WithPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithMaxPages caps how many pages are fetched for a single listing
func WithMaxPages(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

// NewClient creates a new GitHub API client.
// It reuses gh CLI authentication when available and falls back to
// anonymous requests otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		// 5000 requests per hour when authenticated, 60 anonymously; one per second is plenty here
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		perPage:     defaultPerPage,
		maxPages:    defaultMaxPages,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = defaultHTTPClient()
	}

	return c
}

func defaultHTTPClient() *http.Client {
	httpClient, err := api.DefaultHTTPClient()
	if err != nil {
		logger.Debugf("gh authentication unavailable, using anonymous requests: %v", err)
		return &http.Client{Timeout: 30 * time.Second}
	}
	return httpClient
}
