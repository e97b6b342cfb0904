package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swfz/qlaunch/internal/api"
	"github.com/swfz/qlaunch/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...api.Option) *api.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]api.Option{
		api.WithBaseURL(server.URL),
		api.WithHTTPClient(server.Client()),
	}, opts...)

	return api.NewClient(opts...)
}

func TestClient_ListRepositories(t *testing.T) {
	t.Parallel()

	t.Run("should return repositories in API order", func(t *testing.T) {
		t.Parallel()

		// given
		var gotPath, gotQuery string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			fmt.Fprint(w, `[
				{"full_name": "octocat/zeta", "html_url": "https://github.com/octocat/zeta", "id": 1},
				{"full_name": "octocat/alpha", "html_url": "https://github.com/octocat/alpha", "id": 2}
			]`)
		})

		// when
		repos, err := client.ListRepositories(context.Background(), "octocat")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/users/octocat/repos", gotPath)
		assert.Equal(t, "page=1&per_page=100", gotQuery)
		assert.Equal(t, []models.Repository{
			models.NewRepository("octocat/zeta", "https://github.com/octocat/zeta"),
			models.NewRepository("octocat/alpha", "https://github.com/octocat/alpha"),
		}, repos)
	})

	t.Run("should follow pages until a short page", func(t *testing.T) {
		t.Parallel()

		// given
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			switch r.URL.Query().Get("page") {
			case "1":
				fmt.Fprint(w, `[{"full_name":"o/a","html_url":"u/a"},{"full_name":"o/b","html_url":"u/b"}]`)
			case "2":
				fmt.Fprint(w, `[{"full_name":"o/c","html_url":"u/c"}]`)
			default:
				t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			}
		}, api.WithPerPage(2))

		// when
		repos, err := client.ListRepositories(context.Background(), "o")

		// then
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
		require.Len(t, repos, 3)
		assert.Equal(t, "o/c", repos[2].FullName)
	})

	t.Run("should stop at the page cap", func(t *testing.T) {
		t.Parallel()

		// given
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			n := calls.Add(1)
			fmt.Fprintf(w, `[{"full_name":"o/%d","html_url":"u/%d"}]`, n, n)
		}, api.WithPerPage(1), api.WithMaxPages(3))

		// when
		repos, err := client.ListRepositories(context.Background(), "o")

		// then
		require.NoError(t, err)
		assert.Len(t, repos, 3)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("should return an empty list for a user without repositories", func(t *testing.T) {
		t.Parallel()

		// given
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[]`)
		})

		// when
		repos, err := client.ListRepositories(context.Background(), "nobody")

		// then
		require.NoError(t, err)
		assert.Empty(t, repos)
	})

	t.Run("should reject entries without the required fields", func(t *testing.T) {
		t.Parallel()

		// given
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[{"full_name":"o/a"}]`)
		})

		// when
		_, err := client.ListRepositories(context.Background(), "o")

		// then
		require.ErrorIs(t, err, api.ErrUnexpectedShape)
	})

	t.Run("should reject a body that is not a list", func(t *testing.T) {
		t.Parallel()

		// given
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"message":"weird"}`)
		})

		// when
		_, err := client.ListRepositories(context.Background(), "o")

		// then
		require.ErrorIs(t, err, api.ErrUnexpectedShape)
	})

	t.Run("should reject a null body", func(t *testing.T) {
		t.Parallel()

		// given
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `null`)
		})

		// when
		repos, err := client.ListRepositories(context.Background(), "o")

		// then
		require.ErrorIs(t, err, api.ErrUnexpectedShape)
		assert.Nil(t, repos)
	})

	t.Run("should reject null entries", func(t *testing.T) {
		t.Parallel()

		// given
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[null]`)
		})

		// when
		_, err := client.ListRepositories(context.Background(), "o")

		// then
		require.ErrorIs(t, err, api.ErrUnexpectedShape)
	})

	t.Run("should report HTTP failures", func(t *testing.T) {
		t.Parallel()

		// given
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		})

		// when
		_, err := client.ListRepositories(context.Background(), "ghost")

		// then
		var httpErr *api.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Contains(t, httpErr.Body, "Not Found")
		assert.NotErrorIs(t, err, api.ErrRateLimited)
	})

	t.Run("should flag an exhausted rate limit", func(t *testing.T) {
		t.Parallel()

		// given
		reset := time.Now().Add(time.Hour).Unix()
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", fmt.Sprint(reset))
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message":"API rate limit exceeded"}`)
		})

		// when
		_, err := client.ListRepositories(context.Background(), "o")

		// then
		require.ErrorIs(t, err, api.ErrRateLimited)
		assert.True(t, strings.Contains(err.Error(), "rate limit exceeded"))
	})

	t.Run("should honour context cancellation", func(t *testing.T) {
		t.Parallel()

		// given
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[]`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := client.ListRepositories(ctx, "o")

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseRateLimit(t *testing.T) {
	t.Parallel()

	t.Run("should parse complete headers", func(t *testing.T) {
		t.Parallel()

		// given
		h := http.Header{}
		h.Set("X-RateLimit-Limit", "5000")
		h.Set("X-RateLimit-Remaining", "4999")
		h.Set("X-RateLimit-Reset", "1700000000")

		// when
		info, ok := api.ParseRateLimit(h)

		// then
		require.True(t, ok)
		assert.Equal(t, 5000, info.Limit)
		assert.Equal(t, 4999, info.Remaining)
		assert.Equal(t, time.Unix(1700000000, 0), info.ResetAt)
	})

	t.Run("should ignore missing headers", func(t *testing.T) {
		t.Parallel()

		_, ok := api.ParseRateLimit(http.Header{})
		assert.False(t, ok)
	})
}
