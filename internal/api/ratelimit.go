package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// ErrRateLimited is wrapped by errors caused by an exhausted API quota
var ErrRateLimited = errors.New("rate limited")

// RateLimitInfo contains information about GitHub API rate limits
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// ParseRateLimit reads the X-RateLimit-* headers of a response.
// It returns false when the headers are missing or malformed.
func ParseRateLimit(h http.Header) (*RateLimitInfo, bool) {
	limit, err := strconv.Atoi(h.Get("X-RateLimit-Limit"))
	if err != nil {
		return nil, false
	}
	remaining, err := strconv.Atoi(h.Get("X-RateLimit-Remaining"))
	if err != nil {
		return nil, false
	}
	reset, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return nil, false
	}

	return &RateLimitInfo{
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   time.Unix(reset, 0),
	}, true
}
