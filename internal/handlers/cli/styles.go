package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the terminal styles used for output
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Notice lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds styles for out. Color is detected from out unless
// noColor forces plain text.
func NewStyles(out io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Label:  r.NewStyle().Foreground(lipgloss.Color("7")),
		Value:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
		Notice: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
