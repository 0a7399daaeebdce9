package measure

import (
	"errors"
	"sync"
	"sync/atomic"

	"flipview/internal/core/viewstate"
)

// Metrics holds lightweight counters for layout activity.
type Metrics struct {
	// totals
	Layouts        atomic.Int64
	ContractErrors atomic.Int64

	// per frame work
	ItemsMeasured atomic.Int64
	ItemsRendered atomic.Int64
	SpacerRows    atomic.Int64

	mu          sync.Mutex
	tierCounts  map[string]int64
	lastWindow  viewstate.Window
	maxRendered int
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics { return &Metrics{tierCounts: make(map[string]int64)} }

// Tier names the measurement completeness of a window.
func Tier(w viewstate.Window) string {
	switch {
	case w.AllHeightsMeasured && w.AnyHeightsMeasured:
		return "all"
	case w.AnyHeightsMeasured:
		return "some"
	default:
		return "none"
	}
}

// ObserveWindow records one successful layout.
func (m *Metrics) ObserveWindow(w viewstate.Window) {
	m.Layouts.Add(1)
	start, end := w.RenderRange()
	m.mu.Lock()
	m.tierCounts[Tier(w)]++
	m.lastWindow = w
	if end-start > m.maxRendered {
		m.maxRendered = end - start
	}
	m.mu.Unlock()
}

// ObserveError counts a failed layout. Contract breaches are tracked apart
// from other errors.
func (m *Metrics) ObserveError(err error) {
	if errors.Is(err, viewstate.ErrContract) || errors.Is(err, viewstate.ErrInvariant) {
		m.ContractErrors.Add(1)
	}
}

// AddRendered accumulates rendered items and spacer rows of a frame.
func (m *Metrics) AddRendered(items, spacerRows int) {
	m.ItemsRendered.Add(int64(items))
	m.SpacerRows.Add(int64(spacerRows))
}

// AddMeasured accumulates newly measured items.
func (m *Metrics) AddMeasured(n int) { m.ItemsMeasured.Add(int64(n)) }

// MetricsSnapshot is a read-only copy of metrics state.
type MetricsSnapshot struct {
	Layouts        int64
	ContractErrors int64
	ItemsMeasured  int64
	ItemsRendered  int64
	SpacerRows     int64
	TierCounts     map[string]int64
	LastWindow     viewstate.Window
	MaxRendered    int
}

// Snapshot returns a copy of the metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	tiers := make(map[string]int64, len(m.tierCounts))
	for k, v := range m.tierCounts {
		tiers[k] = v
	}
	return MetricsSnapshot{
		Layouts:        m.Layouts.Load(),
		ContractErrors: m.ContractErrors.Load(),
		ItemsMeasured:  m.ItemsMeasured.Load(),
		ItemsRendered:  m.ItemsRendered.Load(),
		SpacerRows:     m.SpacerRows.Load(),
		TierCounts:     tiers,
		LastWindow:     m.lastWindow,
		MaxRendered:    m.maxRendered,
	}
}
