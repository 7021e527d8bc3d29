package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the menu styles, bound to the writer they render for so
// that plain writers get plain text.
type styles struct {
	Title lipgloss.Style
	Hint  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF")),
		Hint: r.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
	}
}
