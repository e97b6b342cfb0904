package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a single-line query prompt
type promptModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Placeholder = "gg golang, git?, example.com ..."
	ti.Prompt = "❯ "
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Focus()

	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return headerStyle.Render(" Search ") + "\n\n" +
		m.input.View() + "\n\n" +
		dimStyle.Render("  Enter to launch, Esc to cancel") + "\n"
}

// value returns the trimmed entry, empty when cancelled
func (m promptModel) value() string {
	if m.cancelled {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}

// Prompter reads a query in the terminal
type Prompter struct {
	options []tea.ProgramOption
}

// NewPrompter creates a terminal prompt. Options are passed to the
// bubbletea program.
func NewPrompter(options ...tea.ProgramOption) *Prompter {
	return &Prompter{options: options}
}

// Prompt asks for a query. Cancelling yields an empty string.
func (p *Prompter) Prompt(ctx context.Context) (string, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.options...)

	program := tea.NewProgram(newPromptModel(), options...)
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("error running prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return "", nil
	}
	return m.value(), nil
}
