package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 30
	filledCell      = "█"
	emptyCell       = "░"
)

// ProgressBar renders a determinate one-line progress indicator
type ProgressBar struct {
	width  int
	filled lipgloss.Style
	empty  lipgloss.Style
	label  lipgloss.Style
}

// NewProgressBar creates a bar of width cells styled for renderer r.
// A width of zero or less uses the default width.
func NewProgressBar(r *lipgloss.Renderer, width int) *ProgressBar {
	if width <= 0 {
		width = defaultBarWidth
	}

	return &ProgressBar{
		width:  width,
		filled: r.NewStyle().Foreground(lipgloss.Color("42")),
		empty:  r.NewStyle().Foreground(lipgloss.Color("240")),
		label:  r.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Render returns e.g. "[██████░░░░] 3/5 report.pdf"
func (p *ProgressBar) Render(done, total int, file string) string {
	if total <= 0 {
		total = 1
	}

	done = max(0, min(done, total))
	cells := p.width * done / total

	bar := p.filled.Render(strings.Repeat(filledCell, cells)) +
		p.empty.Render(strings.Repeat(emptyCell, p.width-cells))

	line := fmt.Sprintf("[%s] %d/%d", bar, done, total)
	if file != "" {
		line += " " + p.label.Render(filepath.Base(file))
	}

	return line
}
