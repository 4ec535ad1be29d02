package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(&bytes.Buffer{})
}

func press(t *testing.T, m PickerModel, keys ...tea.KeyMsg) (PickerModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)

		var ok bool
		m, ok = next.(PickerModel)
		require.True(t, ok)
	}

	return m, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
)

func TestPicker_DefaultsToFirstPrinter(t *testing.T) {
	t.Parallel()

	m := NewPickerModel([]string{"HP-Office", "Lab"}, plainRenderer())
	m, cmd := press(t, m, keyEnter)

	choice, ok := m.Choice()
	assert.True(t, ok)
	assert.Equal(t, "HP-Office", choice)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPicker_Navigation(t *testing.T) {
	t.Parallel()

	m := NewPickerModel([]string{"A", "B", "C"}, plainRenderer())

	m, _ = press(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last printer")

	m, _ = press(t, m, keyUp, keyUp, keyUp)
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the first printer")

	m, _ = press(t, m, keyJ, keyEnter)
	choice, ok := m.Choice()
	assert.True(t, ok)
	assert.Equal(t, "B", choice)
}

func TestPicker_Abort(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{keyEsc, keyQ} {
		m := NewPickerModel([]string{"A"}, plainRenderer())
		m, cmd := press(t, m, key)

		_, ok := m.Choice()
		assert.False(t, ok)
		assert.NotNil(t, cmd)
		assert.Empty(t, m.View())
	}
}

func TestPicker_IgnoresOtherMessages(t *testing.T) {
	t.Parallel()

	m := NewPickerModel([]string{"A", "B"}, plainRenderer())
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, next.(PickerModel).Cursor())
}

func TestPicker_View(t *testing.T) {
	t.Parallel()

	m := NewPickerModel([]string{"HP-Office", "Lab"}, plainRenderer())
	m, _ = press(t, m, keyDown)

	view := m.View()
	assert.Contains(t, view, "Select the printer:")
	assert.Contains(t, view, "  HP-Office")
	assert.Contains(t, view, "> Lab")
}

func TestPickPrinter_NoPrinters(t *testing.T) {
	t.Parallel()

	_, err := PickPrinter(nil, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoPrinters)
}

func TestProgressBar_Render(t *testing.T) {
	t.Parallel()

	bar := NewProgressBar(plainRenderer(), 10)

	tests := []struct {
		name   string
		done   int
		total  int
		file   string
		filled int
		suffix string
	}{
		{name: "start", done: 0, total: 4, file: "", filled: 0, suffix: "] 0/4"},
		{name: "half", done: 2, total: 4, file: "/docs/b.pdf", filled: 5, suffix: "] 2/4 b.pdf"},
		{name: "complete", done: 4, total: 4, file: "/docs/d.pdf", filled: 10, suffix: "] 4/4 d.pdf"},
		{name: "overflow clamps", done: 9, total: 4, file: "", filled: 10, suffix: "] 4/4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := bar.Render(tt.done, tt.total, tt.file)

			assert.Equal(t, tt.filled, strings.Count(line, filledCell))
			assert.Equal(t, 10-tt.filled, strings.Count(line, emptyCell))
			assert.True(t, strings.HasSuffix(line, tt.suffix), "got %q", line)
		})
	}
}

func TestProgressBar_DefaultWidth(t *testing.T) {
	t.Parallel()

	line := NewProgressBar(plainRenderer(), 0).Render(1, 1, "")
	assert.Equal(t, defaultBarWidth, strings.Count(line, filledCell))
}
