// Package ui holds the terminal styles shared by the prompts and the final
// instructions. Styles are bound to the writer they render for, so output to
// a pipe or file stays free of escape sequences.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the palette for one output stream.
type Styles struct {
	Question lipgloss.Style
	Hint     lipgloss.Style
	Choice   lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Command  lipgloss.Style
}

// New returns styles that render for w.
func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	accent := lipgloss.Color("#F93920")

	return Styles{
		Question: r.NewStyle().Bold(true),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
		Choice:   r.NewStyle().Foreground(accent),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("#98C379")).Bold(true),
		Command:  r.NewStyle().Foreground(lipgloss.Color("#61AFEF")),
	}
}
