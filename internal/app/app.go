package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/swfz/qlaunch/internal/api"
	"github.com/swfz/qlaunch/internal/browser"
	"github.com/swfz/qlaunch/internal/dialog"
	"github.com/swfz/qlaunch/internal/formatter"
	"github.com/swfz/qlaunch/internal/interactive"
	"github.com/swfz/qlaunch/internal/models"
	"github.com/swfz/qlaunch/internal/query"
)

// ErrNoUsername is returned when the repository list is requested without a username
var ErrNoUsername = errors.New(EnvUsername + " is not set")

// Prompter asks the user for a query; a cancelled prompt yields ""
type Prompter interface {
	Prompt(ctx context.Context) (string, error)
}

// Selector lets the user pick one repository by full name
type Selector interface {
	Select(ctx context.Context, repos []models.Repository) (string, bool, error)
}

// RepositoryLister fetches the repositories of a user
type RepositoryLister interface {
	ListRepositories(ctx context.Context, username string) ([]models.Repository, error)
}

// Opener opens a URL in the user's viewer
type Opener interface {
	Open(url string) error
}

// Collaborators are the external systems the launcher talks to
type Collaborators struct {
	Prompter Prompter
	Selector Selector
	Lister   RepositoryLister
	Opener   Opener
	Output   io.Writer // Dry-run output
}

// App encapsulates the application logic
type App struct {
	config *Config
	deps   Collaborators
}

// New creates an application wired to zenity (or the terminal with
// Config.Terminal), the GitHub API and the system browser
func New(config *Config) *App {
	deps := Collaborators{
		Lister: api.NewClient(),
		Opener: browser.New(),
		Output: os.Stdout,
	}

	if config.Terminal {
		deps.Prompter = interactive.NewPrompter()
		deps.Selector = interactive.NewSelector()
	} else {
		zenity := dialog.NewZenity()
		deps.Prompter = zenity
		deps.Selector = zenity
	}

	return NewWithCollaborators(config, deps)
}

// NewWithCollaborators creates an application with explicit collaborators
func NewWithCollaborators(config *Config, deps Collaborators) *App {
	if deps.Output == nil {
		deps.Output = io.Discard
	}
	return &App{
		config: config,
		deps:   deps,
	}
}

// Run executes one prompt → classify → act cycle
func (a *App) Run(ctx context.Context) error {
	q, err := a.readQuery(ctx)
	if err != nil {
		return err
	}

	action := query.Classify(q, a.config.Username)
	logger.Debugf("Classified %q as %s (rule: %s)", q, action, query.RuleName(q))

	if a.config.DryRun && action.Kind != query.KindListRepositories {
		return formatter.RenderAction(a.deps.Output, action)
	}

	switch action.Kind {
	case query.KindOpenURL:
		return a.open(action.URL)
	case query.KindListRepositories:
		return a.listRepositories(ctx)
	default:
		logger.Debug("Empty query, nothing to do")
		return nil
	}
}

// readQuery returns the query from the command line or asks for one
func (a *App) readQuery(ctx context.Context) (string, error) {
	if a.config.Query != "" {
		return a.config.Query, nil
	}

	q, err := a.deps.Prompter.Prompt(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read query: %w", err)
	}
	return q, nil
}

// listRepositories fetches, presents and opens one of the user's repositories
func (a *App) listRepositories(ctx context.Context) error {
	if a.config.Username == "" {
		return fmt.Errorf("cannot list repositories: %w", ErrNoUsername)
	}

	lookupCtx := ctx
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	logger.Debugf("Fetching repositories of %s", a.config.Username)

	repos, err := a.deps.Lister.ListRepositories(lookupCtx, a.config.Username)
	if err != nil {
		return fmt.Errorf("failed to fetch repositories: %w", err)
	}

	// Handle empty results
	if len(repos) == 0 {
		logger.Infof("No repositories found for %s", a.config.Username)
		return nil
	}

	if a.config.DryRun {
		return formatter.RenderRepositories(a.deps.Output, repos)
	}

	name, ok, err := a.deps.Selector.Select(ctx, repos)
	if err != nil {
		return fmt.Errorf("failed to select repository: %w", err)
	}
	if !ok {
		logger.Debug("No repository selected")
		return nil
	}

	url, found := models.FindURL(repos, name)
	if !found {
		logger.Warnf("Selected repository %q is not in the list", name)
		return nil
	}

	return a.open(url)
}

func (a *App) open(url string) error {
	if url == "" {
		logger.Debug("No URL to open")
		return nil
	}

	if err := a.deps.Opener.Open(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
