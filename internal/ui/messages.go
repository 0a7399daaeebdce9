package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"flipview/internal/infra/logx"
	"flipview/internal/transcript"
)

// ---------- Messages / Cmds ----------

// pageLoadedMsg carries the next page of older messages. offset is the feed
// position the page was requested at; a page whose offset no longer matches
// the loaded count is stale and dropped.
type pageLoadedMsg struct {
	offset int
	items  []transcript.Message
	more   bool
}

func loadPageCmd(feed *transcript.Feed, offset, limit int) tea.Cmd {
	return func() tea.Msg {
		items, more := feed.Page(offset, limit)
		logx.Debugf("page loaded: offset=%d n=%d more=%t", offset, len(items), more)
		return pageLoadedMsg{offset: offset, items: items, more: more}
	}
}

// maybeLoadMore requests the next page once the reserve below the aperture
// reaches past the loaded messages.
func (m *Model) maybeLoadMore() tea.Cmd {
	if !m.hasMore || m.loading || m.feed == nil {
		return nil
	}
	if m.window.VisibleEnd < len(m.items) {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, loadPageCmd(m.feed, len(m.items), m.cfg.PageSize))
}

func (m *Model) handlePageLoaded(msg pageLoadedMsg) tea.Cmd {
	m.loading = false
	if msg.offset != len(m.items) {
		logx.Warnf("dropping stale page at offset %d (have %d)", msg.offset, len(m.items))
		return nil
	}
	m.items = append(m.items, msg.items...)
	m.hasMore = msg.more
	m.layout()
	return m.maybeLoadMore()
}
