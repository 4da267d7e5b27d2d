package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders terminal output. Colors are dropped when w is not a terminal.
type styles struct {
	heading lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("208")),
		muted:   r.NewStyle().Faint(true),
	}
}
