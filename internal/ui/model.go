package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"flipview/internal/config"
	"flipview/internal/core/viewstate"
	"flipview/internal/measure"
	"flipview/internal/render"
	"flipview/internal/transcript"
)

// --- Model / State ---
type state int

const (
	stateBrowse state = iota
	stateSearch
	stateQuit
)

type SearchState struct {
	input   textinput.Model
	query   string
	matches []int // indices into items, best first
	pos     int   // current match in matches
}

// ScrollState is the flipped scroll position. scrollTop is measured from the
// top of the content composed on the previous frame, whose total height is
// prevHeight.
type ScrollState struct {
	scrollTop  float64
	prevHeight float64
}

type Model struct {
	state         state
	cfg           config.Config
	statusMsg     string
	width, height int

	// transcript pages, index 0 is the newest message
	feed    *transcript.Feed
	items   []transcript.Message
	hasMore bool
	loading bool

	// layout
	renderer  *render.Renderer
	blocks    map[int]string // rendered item blocks for the current width
	table     *measure.Table
	metrics   *measure.Metrics
	window    viewstate.Window
	layoutErr error
	scroll    ScrollState

	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	showDiag bool

	search    SearchState
	filterCfg FilterConfig
}

// New builds the viewer for feed. The first page is loaded synchronously so
// the first frame already has items to lay out.
func New(cfg config.Config, feed *transcript.Feed) Model {
	m := Model{
		state:    stateBrowse,
		cfg:      cfg,
		feed:     feed,
		blocks:   make(map[int]string),
		table:    measure.NewTable(),
		metrics:  measure.NewMetrics(),
		keys:     newKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 20), // resized on WindowSizeMsg
	}
	m.items, m.hasMore = feed.Page(0, cfg.PageSize)
	m.renderer = render.New(m.viewport.Width, cfg.Theme, cfg.Markdown)

	si := textinput.New()
	si.Placeholder = "Fuzzy search messages…"
	si.CharLimit = 200
	si.Width = 40
	m.search.input = si
	m.filterCfg = FilterConfig{
		MinCoverage: 0.6,
		MaxSpread:   40,
		MaxResults:  200,
	}

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle
	m.spinner = sp

	m.layout()
	return m
}

func (m Model) Init() tea.Cmd { return m.maybeLoadMore() }

// Metrics exposes the layout counters, e.g. for a debug dump on exit.
func (m Model) Metrics() measure.MetricsSnapshot { return m.metrics.Snapshot() }
