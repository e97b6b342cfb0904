package formatter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/swfz/qlaunch/internal/models"
	"github.com/swfz/qlaunch/internal/query"
)

const maxNameWidth = 40

// RenderRepositories writes repositories as a table, keeping API order
func RenderRepositories(w io.Writer, repos []models.Repository) error {
	table := tablewriter.NewWriter(w)

	table.Header("#", "NAME", "REPOSITORY", "URL")

	for i, repo := range repos {
		row := []interface{}{
			i + 1,
			TruncateWithEllipsis(repo.Name(), maxNameWidth),
			TruncateWithEllipsis(repo.FullName, maxNameWidth),
			repo.HTMLURL,
		}
		if err := table.Append(row...); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d repositories\n", len(repos))
	return err
}

// RenderAction writes a one-line description of what would be launched
func RenderAction(w io.Writer, action query.Action) error {
	var err error
	switch action.Kind {
	case query.KindOpenURL:
		_, err = fmt.Fprintf(w, "open %s\n", action.URL)
	case query.KindListRepositories:
		_, err = fmt.Fprintln(w, "list repositories")
	default:
		_, err = fmt.Fprintln(w, "nothing to do")
	}
	return err
}
