package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"flipview/internal/transcript"
)

const (
	defaultTheme = "dark"
	gutter       = 2
	minWidth     = 10
)

var (
	authorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8942E1"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Renderer turns messages into terminal text at a fixed width.
type Renderer struct {
	width    int
	markdown bool
	glamour  *glamour.TermRenderer
}

// New returns a renderer for the given width. Markdown bodies go through
// glamour with the named style when markdown is enabled; a style glamour does
// not know falls back to plain wrapping.
func New(width int, theme string, markdown bool) *Renderer {
	if width < minWidth {
		width = minWidth
	}
	r := &Renderer{width: width, markdown: markdown}
	if !markdown {
		return r
	}
	if theme == "" {
		theme = defaultTheme
	}
	g, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width-gutter),
	)
	if err == nil {
		r.glamour = g
	}
	return r
}

// Width returns the render width.
func (r *Renderer) Width() int { return r.width }

// Render draws the author header and the indented body of m.
func (r *Renderer) Render(m transcript.Message) string {
	header := authorStyle.Render(m.Author)
	if !m.At.IsZero() {
		header += " " + timeStyle.Render(m.At.Format("15:04"))
	}
	body := r.body(m)
	return header + "\n" + indent.String(body, gutter)
}

func (r *Renderer) body(m transcript.Message) string {
	if m.Markdown && r.glamour != nil {
		out, err := r.glamour.Render(m.Body)
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return wordwrap.String(strings.TrimSpace(m.Body), r.width-gutter)
}

// Height returns the number of terminal rows s occupies.
func Height(s string) int { return lipgloss.Height(s) }

// Spacer returns rows blank lines, or "" for none.
func Spacer(rows int) string {
	if rows <= 0 {
		return ""
	}
	return strings.Repeat("\n", rows-1)
}

// Describe is a one-line summary of m for search lists.
func Describe(m transcript.Message) string {
	body := strings.Join(strings.Fields(m.Body), " ")
	return fmt.Sprintf("%s: %s", m.Author, body)
}
