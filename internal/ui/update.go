package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"flipview/internal/render"
)

// headerRows covers the title and the divider; footerRows the extra line
// (search input or diagnostics) and the status line. Help rows come on top.
const (
	headerRows = 2
	footerRows = 2
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.state = stateQuit
			return m, tea.Quit
		}
		if m.state == stateSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleBrowseKey(msg)

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		cmd := m.maybeLoadMore()
		return m, cmd

	case pageLoadedMsg:
		cmd := m.handlePageLoaded(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	page := max(m.viewport.Height-1, 1)
	switch {
	case key.Matches(msg, m.keys.quit):
		m.state = stateQuit
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.pageUp):
		m.scrollBy(-page)
	case key.Matches(msg, m.keys.pageDown):
		m.scrollBy(page)
	case key.Matches(msg, m.keys.oldest):
		m.jumpToItem(len(m.items)-1, true)
	case key.Matches(msg, m.keys.newest):
		m.scrollToNewest()
	case key.Matches(msg, m.keys.search):
		m.state = stateSearch
		m.search.input.SetValue(m.search.query)
		m.search.input.CursorEnd()
		return m, m.search.input.Focus()
	case key.Matches(msg, m.keys.next):
		m.nextMatch()
	case key.Matches(msg, m.keys.diag):
		m.showDiag = !m.showDiag
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		m.setSize(m.width, m.height)
	}
	cmd := m.maybeLoadMore()
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateBrowse
		m.search.input.Blur()
		return m, nil
	case "enter":
		m.state = stateBrowse
		m.search.input.Blur()
		m.search.query = m.search.input.Value()
		m.search.matches = findMessages(m.search.query, m.items, m.filterCfg)
		m.search.pos = 0
		if len(m.search.matches) == 0 {
			m.statusMsg = fmt.Sprintf("no match for %q", m.search.query)
			return m, nil
		}
		m.jumpToItem(m.search.matches[0], false)
		m.statusMsg = fmt.Sprintf("match 1/%d", len(m.search.matches))
		cmd := m.maybeLoadMore()
		return m, cmd
	}
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

func (m *Model) nextMatch() {
	if len(m.search.matches) == 0 {
		m.statusMsg = "no search results"
		return
	}
	m.search.pos = (m.search.pos + 1) % len(m.search.matches)
	m.jumpToItem(m.search.matches[m.search.pos], false)
	m.statusMsg = fmt.Sprintf("match %d/%d", m.search.pos+1, len(m.search.matches))
}

func (m Model) chromeRows() int {
	helpRows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			helpRows = max(helpRows, len(col))
		}
	}
	return headerRows + footerRows + helpRows
}

// setSize resizes the aperture. A width change re-renders and re-measures
// every item and returns to the newest message; a height change keeps the
// aperture bottom where it was.
func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(height-m.chromeRows(), 1)
	if width != m.viewport.Width {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
		m.renderer = render.New(width, m.cfg.Theme, m.cfg.Markdown)
		m.resetLayout()
		m.layout()
		return
	}
	m.scroll.scrollTop += float64(m.viewport.Height - vpHeight)
	m.viewport.Height = vpHeight
	m.clampScroll()
	m.layout()
}
