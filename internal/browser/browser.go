// Package browser opens URLs with the desktop's default handler.
package browser

import (
	"errors"
	"fmt"
	"strings"

	cliBrowser "github.com/cli/browser"
	logger "github.com/sirupsen/logrus"
)

var ErrEmptyURL = errors.New("url is required")

// OpenFunc hands a URL to the platform opener
type OpenFunc func(url string) error

// Browser opens URLs through an OpenFunc
type Browser struct {
	open OpenFunc
}

// New returns a Browser backed by the system's default handler
// (xdg-open and friends, open, or rundll32)
func New() *Browser {
	return &Browser{open: cliBrowser.OpenURL}
}

// NewWithOpen returns a Browser that launches URLs through open
func NewWithOpen(open OpenFunc) *Browser {
	return &Browser{open: open}
}

// Open passes url to the default viewer unchanged
func (b *Browser) Open(url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}

	logger.Debugf("Opening %s", url)

	if err := b.open(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
