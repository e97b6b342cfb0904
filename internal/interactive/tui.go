package interactive

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swfz/qlaunch/internal/formatter"
	"github.com/swfz/qlaunch/internal/models"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// selectModel represents the repository picker state
type selectModel struct {
	repos      []models.Repository // All repositories
	filtered   []models.Repository // Repositories matching the filter
	cursor     int                 // Current cursor position
	query      string              // Filter query
	searchMode bool                // Whether typing a filter
	chosen     string              // Selected full name
	done       bool                // Whether the picker has finished
	width      int                 // Terminal width
	height     int                 // Terminal height
}

func newSelectModel(repos []models.Repository) selectModel {
	return selectModel{
		repos:    repos,
		filtered: repos,
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.done = true
			return m, tea.Quit

		case "esc":
			if m.searchMode {
				m.searchMode = false
				m.query = ""
				m.filter()
				return m, nil
			}
			m.done = true
			return m, tea.Quit

		case "enter":
			if m.searchMode {
				m.searchMode = false
				return m, nil
			}
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.chosen = m.filtered[m.cursor].FullName
			}
			m.done = true
			return m, tea.Quit

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case "backspace":
			if m.searchMode && len(m.query) > 0 {
				runes := []rune(m.query)
				m.query = string(runes[:len(runes)-1])
				m.filter()
			}
			return m, nil
		}

		if m.searchMode {
			switch msg.Type {
			case tea.KeyRunes:
				m.query += string(msg.Runes)
				m.filter()
			case tea.KeySpace:
				m.query += " "
				m.filter()
			}
			return m, nil
		}

		switch msg.String() {
		case "q":
			m.done = true
			return m, tea.Quit
		case "/":
			m.searchMode = true
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

// View renders the UI
func (m selectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(" qlaunch repositories ") + "\n")
	b.WriteString(dimStyle.Render("  Use ↑/↓ or j/k to navigate, / to filter, Enter to open, q to quit") + "\n\n")

	// Search bar
	if m.searchMode {
		b.WriteString(fmt.Sprintf("Filter: %s█\n\n", m.query))
	} else if m.query != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Filter: %s (press / to edit, Esc to clear)", m.query)) + "\n\n")
	}

	// Visible window around the cursor
	maxVisible := m.height - 8
	if maxVisible < 5 {
		maxVisible = 5
	}

	startIdx := m.cursor - maxVisible/2
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := startIdx + maxVisible
	if endIdx > len(m.filtered) {
		endIdx = len(m.filtered)
		startIdx = endIdx - maxVisible
		if startIdx < 0 {
			startIdx = 0
		}
	}

	nameWidth := m.width - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for i := startIdx; i < endIdx; i++ {
		line := formatter.TruncateWithEllipsis(m.filtered[i].FullName, nameWidth)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(normalStyle.Render("  "+line) + "\n")
		}
	}

	// Footer
	if len(m.filtered) == 0 {
		b.WriteString("\n" + dimStyle.Render("  No repositories match your filter") + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("  %d/%d repositories", m.cursor+1, len(m.filtered))) + "\n")
	}

	return b.String()
}

// filter narrows the list to repositories whose full name contains the query
func (m *selectModel) filter() {
	if m.query == "" {
		m.filtered = m.repos
		m.cursor = 0
		return
	}

	m.filtered = []models.Repository{}
	query := strings.ToLower(m.query)

	for _, repo := range m.repos {
		if strings.Contains(strings.ToLower(repo.FullName), query) {
			m.filtered = append(m.filtered, repo)
		}
	}

	// Reset cursor if out of bounds
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selector picks a repository in the terminal
type Selector struct {
	options []tea.ProgramOption
}

// NewSelector creates a terminal selector. Options are passed to the
// bubbletea program.
func NewSelector(options ...tea.ProgramOption) *Selector {
	return &Selector{options: options}
}

// Select runs the picker and returns the chosen full name
func (s *Selector) Select(ctx context.Context, repos []models.Repository) (string, bool, error) {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, s.options...)

	p := tea.NewProgram(newSelectModel(repos), options...)
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("error running repository picker: %w", err)
	}

	m, ok := final.(selectModel)
	if !ok || m.chosen == "" {
		return "", false, nil
	}
	return m.chosen, true, nil
}
