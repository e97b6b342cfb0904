package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/swfz/qlaunch/internal/models"
)

// ErrUnexpectedShape is returned when the API answers with JSON that is not
// a list of repositories
var ErrUnexpectedShape = errors.New("unexpected repository list shape")

// HTTPError is returned for non-2xx API responses
type HTTPError struct {
	StatusCode int
	Body       string
	RateLimit  *RateLimitInfo
}

func (e *HTTPError) Error() string {
	if e.IsRateLimited() {
		return fmt.Sprintf("GitHub API rate limit exceeded (HTTP %d), resets at %s",
			e.StatusCode, e.RateLimit.ResetAt.Format("15:04:05"))
	}
	return fmt.Sprintf("GitHub API request failed (HTTP %d): %s", e.StatusCode, e.Body)
}

// Unwrap exposes ErrRateLimited for errors.Is
func (e *HTTPError) Unwrap() error {
	if e.IsRateLimited() {
		return ErrRateLimited
	}
	return nil
}

// IsRateLimited reports whether the failure was caused by an exhausted quota
func (e *HTTPError) IsRateLimited() bool {
	if e.RateLimit == nil || e.RateLimit.Remaining != 0 {
		return false
	}
	return e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusTooManyRequests
}

// repositoryNode mirrors the fields used from GET /users/{user}/repos
type repositoryNode struct {
	FullName *string `json:"full_name"`
	HTMLURL  *string `json:"html_url"`
}

// ListRepositories fetches the public repositories of a user, in API order
func (c *Client) ListRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	var repos []models.Repository

	for page := 1; page <= c.maxPages; page++ {
		nodes, err := c.fetchRepositoryPage(ctx, username, page)
		if err != nil {
			return nil, err
		}

		for i, node := range nodes {
			if node.FullName == nil || node.HTMLURL == nil {
				return nil, fmt.Errorf("%w: entry %d on page %d lacks full_name or html_url", ErrUnexpectedShape, i, page)
			}
			repos = append(repos, models.NewRepository(*node.FullName, *node.HTMLURL))
		}

		// A short page is the last one
		if len(nodes) < c.perPage {
			break
		}
	}

	logger.Debugf("Fetched %d repositories for %q", len(repos), username)

	return repos, nil
}

func (c *Client) fetchRepositoryPage(ctx context.Context, username string, page int) ([]repositoryNode, error) {
	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), url.Values{
		"per_page": {fmt.Sprint(c.perPage)},
		"page":     {fmt.Sprint(page)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	logger.Debugf("GET %s", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if info, ok := ParseRateLimit(resp.Header); ok {
		logger.Debugf("Rate limit: %d/%d remaining, resets at %s", info.Remaining, info.Limit, info.ResetAt.Format("15:04:05"))
	}

	// Handle non-2xx status codes
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
		if info, ok := ParseRateLimit(resp.Header); ok {
			httpErr.RateLimit = info
		}
		return nil, httpErr
	}

	var nodes []repositoryNode
	if err := json.Unmarshal(body, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	// "null" unmarshals without error but is not a list
	if nodes == nil {
		return nil, fmt.Errorf("%w: body is not a JSON array", ErrUnexpectedShape)
	}

	return nodes, nil
}
