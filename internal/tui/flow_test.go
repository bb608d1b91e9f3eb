package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/basket-case/internal/storage"
)

func testDatasets() []storage.DatasetInfo {
	return []storage.DatasetInfo{
		{Name: "amazon", TransactionCount: 20, ItemCount: 10, ImportedAt: time.Now()},
		{Name: "general", TransactionCount: 5, ItemCount: 6, ImportedAt: time.Now()},
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeString(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestFlowCompletes(t *testing.T) {
	m := NewModel(testDatasets())

	msgs := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	}
	msgs = append(msgs, typeString("60")...)
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
	msgs = append(msgs, typeString("75")...)
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, msgs...)

	selection, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, "general", selection.Dataset)
	assert.InDelta(t, 0.6, selection.MinSupport, 1e-9)
	assert.InDelta(t, 0.75, selection.MinConfidence, 1e-9)
}

func TestFlowReasksOnInvalidThreshold(t *testing.T) {
	m := NewModel(testDatasets())

	msgs := []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}
	msgs = append(msgs, typeString("150")...)
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, msgs...)

	// Still on the support step with an error message showing.
	assert.Equal(t, StateSupport, m.state)
	assert.Contains(t, m.View(), "between 0 and 100")

	_, ok := m.Selection()
	assert.False(t, ok)
}

func TestFlowCancelled(t *testing.T) {
	m := NewModel(testDatasets())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	_, ok := m.Selection()
	assert.False(t, ok)
}

func TestFlowCursorBounds(t *testing.T) {
	m := NewModel(testDatasets())

	m = update(t, m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateSupport, m.state)
}

func TestFlowViewListsDatasets(t *testing.T) {
	m := NewModel(testDatasets())
	view := m.View()

	assert.Contains(t, view, "amazon")
	assert.Contains(t, view, "general")
	assert.Contains(t, view, "20 transactions")
}
