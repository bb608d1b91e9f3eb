// Package tui implements the interactive mining flow: pick a stored
// dataset, enter the support and confidence thresholds, and confirm.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshsymonds/basket-case/internal/cli"
	"github.com/joshsymonds/basket-case/internal/storage"
)

// Selection is what the flow produces: a dataset and the two thresholds
// as fractions in [0, 1].
type Selection struct {
	Dataset       string
	MinSupport    float64
	MinConfidence float64
}

// State represents the current step of the flow.
type State int

const (
	StateDataset State = iota
	StateSupport
	StateConfidence
	StateDone
)

// KeyMap defines the flow's keyboard shortcuts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Model holds the flow state.
type Model struct {
	errMsg    string
	datasets  []storage.DatasetInfo
	input     textinput.Model
	keymap    KeyMap
	selection Selection
	cursor    int
	state     State
	cancelled bool
}

// NewModel creates the flow model over the stored datasets.
func NewModel(datasets []storage.DatasetInfo) Model {
	input := textinput.New()
	input.Placeholder = "0-100"
	input.CharLimit = 8
	input.Width = 12

	return Model{
		datasets: datasets,
		input:    input,
		keymap:   DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	if key.Matches(keyMsg, m.keymap.Quit) {
		m.cancelled = true
		return m, tea.Quit
	}

	switch m.state {
	case StateDataset:
		switch {
		case key.Matches(keyMsg, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(keyMsg, m.keymap.Down):
			if m.cursor < len(m.datasets)-1 {
				m.cursor++
			}
		case key.Matches(keyMsg, m.keymap.Select):
			if len(m.datasets) > 0 {
				m.selection.Dataset = m.datasets[m.cursor].Name
				m.state = StateSupport
				m.input.Focus()
			}
		}
		return m, nil

	case StateSupport:
		if key.Matches(keyMsg, m.keymap.Select) {
			value, err := parsePercentage(m.input.Value())
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.selection.MinSupport = value
			m.errMsg = ""
			m.input.Reset()
			m.state = StateConfidence
			return m, nil
		}
		return m.updateInput(msg)

	case StateConfidence:
		if key.Matches(keyMsg, m.keymap.Select) {
			value, err := parsePercentage(m.input.Value())
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.selection.MinConfidence = value
			m.errMsg = ""
			m.state = StateDone
			return m, tea.Quit
		}
		return m.updateInput(msg)

	case StateDone:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	switch m.state {
	case StateDataset:
		b.WriteString(cli.FormatTitle("Pick a dataset to analyze"))
		b.WriteString("\n\n")
		if len(m.datasets) == 0 {
			b.WriteString(cli.SubtleStyle.Render("No datasets imported yet. Run 'basket import' first."))
			b.WriteString("\n")
		}
		for i, info := range m.datasets {
			line := fmt.Sprintf("%s  %d transactions, %d items", info.Name, info.TransactionCount, info.ItemCount)
			if i == m.cursor {
				b.WriteString(cli.PromptStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	case StateSupport:
		b.WriteString(cli.FormatTitle("Minimum support"))
		b.WriteString("\n\n")
		b.WriteString("Enter the minimum support (as a percentage between 0 and 100):\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case StateConfidence:
		b.WriteString(cli.FormatTitle("Minimum confidence"))
		b.WriteString("\n\n")
		b.WriteString("Enter the minimum confidence (as a percentage between 0 and 100):\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case StateDone:
		return ""
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(cli.FormatWarning(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("↑/↓ move · enter select · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// Selection returns the completed selection; ok is false when the flow
// was cancelled or never finished.
func (m Model) Selection() (Selection, bool) {
	return m.selection, m.state == StateDone && !m.cancelled
}

// Run drives the flow to completion and returns the user's selection.
// ok is false when the user cancelled.
func Run(datasets []storage.DatasetInfo) (Selection, bool, error) {
	program := tea.NewProgram(NewModel(datasets))
	final, err := program.Run()
	if err != nil {
		return Selection{}, false, fmt.Errorf("flow failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Selection{}, false, fmt.Errorf("flow returned unexpected model %T", final)
	}
	selection, ok := m.Selection()
	return selection, ok, nil
}

func parsePercentage(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input, please enter a number")
	}
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("please enter a value between 0 and 100")
	}
	return value / 100, nil
}
