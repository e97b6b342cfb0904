// Package dialog shows the desktop query prompt and repository list.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/zenity"
	logger "github.com/sirupsen/logrus"

	"github.com/swfz/qlaunch/internal/models"
)

const (
	entryTitle = "Search"
	entryText  = "Enter your search query:"
	listTitle  = "Repositories"
	listText   = "Select a repository to open:"
)

// Backend is the subset of the zenity package used by the dialogs
type Backend interface {
	Entry(text string, options ...zenity.Option) (string, error)
	List(text string, items []string, options ...zenity.Option) (string, error)
}

// zenityBackend forwards to the package-level zenity functions
type zenityBackend struct{}

func (zenityBackend) Entry(text string, options ...zenity.Option) (string, error) {
	return zenity.Entry(text, options...)
}

func (zenityBackend) List(text string, items []string, options ...zenity.Option) (string, error) {
	return zenity.List(text, items, options...)
}

// Zenity implements the entry and list dialogs with native desktop dialogs
type Zenity struct {
	backend Backend
}

// NewZenity returns dialogs backed by github.com/ncruces/zenity
func NewZenity() *Zenity {
	return &Zenity{backend: zenityBackend{}}
}

// NewZenityWithBackend returns dialogs that go through backend
func NewZenityWithBackend(backend Backend) *Zenity {
	return &Zenity{backend: backend}
}

// Prompt asks for a query. A dismissed dialog yields an empty string.
func (z *Zenity) Prompt(ctx context.Context) (string, error) {
	out, err := z.backend.Entry(entryText,
		zenity.Context(ctx),
		zenity.Title(entryTitle),
		zenity.Width(600),
		zenity.Height(100),
		zenity.EntryText(""),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			logger.Debug("Entry dialog dismissed")
			return "", nil
		}
		return "", fmt.Errorf("failed to run entry dialog: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Select shows the repository names and returns the chosen one.
// ok is false when the dialog was dismissed or nothing was chosen.
// URLs stay out of the dialog; callers resolve the name with models.FindURL.
func (z *Zenity) Select(ctx context.Context, repos []models.Repository) (string, bool, error) {
	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		names = append(names, repo.FullName)
	}

	out, err := z.backend.List(listText, names,
		zenity.Context(ctx),
		zenity.Title(listTitle),
		zenity.Width(600),
		zenity.Height(400),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			logger.Debug("List dialog dismissed")
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to run list dialog: %w", err)
	}

	selected := strings.TrimSpace(out)
	if selected == "" {
		return "", false, nil
	}
	return selected, true, nil
}
