// Package picker implements the interactive candidate picker TUI shown
// when a lookup is ambiguous.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/oakmoth/pokedex/internal/dex"
	"github.com/oakmoth/pokedex/internal/match"
)

// Candidate is one ranked option shown in the picker.
type Candidate = match.Match[dex.Pokemon]

// keyMap defines the picker keybindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Choose, k.Cancel}}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// Model is the Bubble Tea model for the candidate picker.
type Model struct {
	candidates []Candidate
	selection  int // Index into candidates; -1 when empty
	choice     int // Index of the accepted candidate; -1 until Enter
	cancelled  bool
	help       help.Model

	width  int // Terminal width
	height int // Terminal height
}

// NewModel creates a picker Model over ranked candidates.
func NewModel(candidates []Candidate) Model {
	selection := 0
	if len(candidates) == 0 {
		selection = -1
	}
	return Model{
		candidates: candidates,
		selection:  selection,
		choice:     -1,
		help:       help.New(),
	}
}

// Choice returns the accepted candidate; ok is false when the picker was
// cancelled or had nothing to offer.
func (m Model) Choice() (Candidate, bool) {
	if m.choice < 0 || m.choice >= len(m.candidates) {
		return Candidate{}, false
	}
	return m.candidates[m.choice], true
}

// IsCancelled reports whether the user backed out without choosing.
func (m Model) IsCancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, keys.Choose):
		if m.selection >= 0 && m.selection < len(m.candidates) {
			m.choice = m.selection
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.selection > 0 {
			m.selection--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.selection < len(m.candidates)-1 {
			m.selection++
		}
		return m, nil
	}

	return m, nil
}

// --- View rendering ---

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Which one did you mean?"))
	b.WriteRune('\n')

	b.WriteString(m.viewList())
	b.WriteRune('\n')

	b.WriteString(m.help.View(keys))

	return b.String()
}

// viewList renders the candidate list with selection marker.
func (m Model) viewList() string {
	if len(m.candidates) == 0 {
		return dimStyle.Render("No matches")
	}

	var b strings.Builder
	maxRows := m.listHeight()
	for i, c := range m.candidates {
		if i >= maxRows {
			break
		}

		name := runewidth.FillRight(c.Item.Name, 14)
		detail := fmt.Sprintf("#%03d  %3.0f%% match", c.Item.Number, c.Score.Similarity*100)

		if i == m.selection {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString(normalStyle.Render("  " + name))
		}
		b.WriteString(dimStyle.Render(detail))

		if i < len(m.candidates)-1 && i < maxRows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// listHeight returns the number of visible list rows (terminal height
// minus the title and help lines).
func (m Model) listHeight() int {
	const chrome = 2
	h := m.height - chrome
	if h < 1 {
		h = 20 // Before the first WindowSizeMsg the terminal size is unknown
	}
	return h
}

// Pick runs the picker over ranked candidates and returns the chosen one;
// ok is false when the user cancelled. The TUI takes over the terminal
// until a choice is made.
func Pick(candidates []Candidate) (Candidate, bool, error) {
	if len(candidates) == 0 {
		return Candidate{}, false, nil
	}

	p := tea.NewProgram(NewModel(candidates), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Candidate{}, false, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Candidate{}, false, errors.New("picker returned unexpected model type")
	}
	if m.IsCancelled() {
		return Candidate{}, false, nil
	}

	choice, ok := m.Choice()
	return choice, ok, nil
}
