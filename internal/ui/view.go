package ui

import (
	"fmt"
	"strings"

	"flipview/internal/measure"
)

func (m Model) View() string {
	if m.state == stateQuit {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("flipview"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.extraLine())
	b.WriteString("\n")
	b.WriteString(renderFooter(m.statusLine(), m.help.View(m.keys)))
	return b.String()
}

// extraLine shows the search input while searching, otherwise layout errors
// or the diagnostics line when enabled.
func (m Model) extraLine() string {
	switch {
	case m.state == stateSearch:
		return "/ " + m.search.input.View()
	case m.layoutErr != nil:
		return errorStyle.Render("layout: " + m.layoutErr.Error())
	case m.showDiag:
		return diagStyle.Render(m.diagLine())
	}
	return ""
}

func (m Model) statusLine() string {
	var parts []string
	if newest, oldest, ok := m.visibleItems(); ok {
		parts = append(parts, fmt.Sprintf("messages %d–%d of %d", newest+1, oldest+1, len(m.items)))
	} else {
		parts = append(parts, fmt.Sprintf("%d messages", len(m.items)))
	}
	if m.hasMore {
		parts = append(parts, "more above")
	}
	if m.loading {
		parts = append(parts, m.spinner.View()+" loading")
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	if len(m.search.matches) > 0 && m.search.query != "" {
		parts = append(parts, matchStyle.Render(fmt.Sprintf("/%s", m.search.query)))
	}
	return strings.Join(parts, "  |  ")
}

func (m Model) diagLine() string {
	w := m.window
	snap := m.metrics.Snapshot()
	line := fmt.Sprintf("start=%d end=%d back=%g front=%g top=%g/%g measured=%d/%d tier=%s layouts=%d",
		w.VisibleStart, w.VisibleEnd, w.BackSpace, w.FrontSpace,
		m.scroll.scrollTop, m.scroll.prevHeight,
		w.NumItemsMeasured, w.NumChildren, measure.Tier(w), snap.Layouts)
	if snap.ContractErrors > 0 {
		line += warnStyle.Render(fmt.Sprintf(" errors=%d", snap.ContractErrors))
	}
	return line
}
