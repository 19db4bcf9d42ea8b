package sweep

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header lipgloss.Style
	check  lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	hint   lipgloss.Style
	done   lipgloss.Style
}

// newStyles builds styles for out. Writers that are not terminals get a
// plain ASCII profile, so the text is unchanged.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		header: r.NewStyle().Bold(true),
		check:  r.NewStyle().Foreground(lipgloss.Color("#7DCFFF")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("#9ECE6A")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#E0AF68")),
		fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		hint:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		done:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#BB9AF7")),
	}
}
