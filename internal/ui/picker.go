// Package ui holds the terminal pieces of batchprint: the interactive printer
// picker and the progress bar.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrNoPrinters is returned when there is nothing to pick from
	ErrNoPrinters = errors.New("no printers available")
	// ErrPickerAborted is returned when the user quits without choosing
	ErrPickerAborted = errors.New("printer selection cancelled")
)

type pickerStyles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	normal   lipgloss.Style
	help     lipgloss.Style
}

func newPickerStyles(r *lipgloss.Renderer) pickerStyles {
	return pickerStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		normal:   r.NewStyle().Foreground(lipgloss.Color("252")),
		help:     r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PickerModel is a bubbletea model listing printers. The cursor starts on the
// first printer, which is what Enter confirms if the user does not move.
type PickerModel struct {
	printers []string
	cursor   int
	chosen   string
	aborted  bool
	styles   pickerStyles
}

// NewPickerModel creates a picker over printers, styled for renderer r
func NewPickerModel(printers []string, r *lipgloss.Renderer) PickerModel {
	return PickerModel{
		printers: printers,
		styles:   newPickerStyles(r),
	}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.printers)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(0, len(m.printers)-1)
	case "enter":
		if len(m.printers) > 0 {
			m.chosen = m.printers[m.cursor]
		}
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PickerModel) View() string {
	if m.chosen != "" || m.aborted {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render("Select the printer:"))
	b.WriteString("\n\n")

	for i, name := range m.printers {
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + name))
		} else {
			b.WriteString(m.styles.normal.Render("  " + name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("↑/↓ move • enter apply • esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// Cursor returns the index of the highlighted printer
func (m PickerModel) Cursor() int {
	return m.cursor
}

// Choice returns the confirmed printer, if any
func (m PickerModel) Choice() (string, bool) {
	return m.chosen, m.chosen != ""
}

// PickPrinter runs the picker on in/out and returns the confirmed printer
func PickPrinter(printers []string, in io.Reader, out io.Writer) (string, error) {
	if len(printers) == 0 {
		return "", ErrNoPrinters
	}

	model := NewPickerModel(printers, lipgloss.NewRenderer(out))
	program := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("error running printer picker: %w", err)
	}

	picked, ok := final.(PickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected picker model %T", final)
	}

	choice, ok := picked.Choice()
	if !ok {
		return "", ErrPickerAborted
	}

	return choice, nil
}
