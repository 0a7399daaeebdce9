package measure

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"flipview/internal/core/viewstate"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
	if m.tierCounts == nil {
		t.Error("tierCounts map not initialized")
	}
	if m.Layouts.Load() != 0 {
		t.Errorf("Layouts = %d, want 0", m.Layouts.Load())
	}
}

func TestMetrics_ObserveWindow(t *testing.T) {
	m := NewMetrics()

	none := viewstate.MustComputeFlipped(viewstate.Input{ApertureHeight: 10, PrevMeasuredScrollableHeight: 10, NumChildren: 5, MaxChildrenPerScreen: 2})
	some := viewstate.MustComputeFlipped(viewstate.Input{ApertureHeight: 10, MeasuredDistances: []float64{4, 8}, PrevMeasuredScrollableHeight: 10, NumChildren: 5, MaxChildrenPerScreen: 2})
	all := viewstate.MustComputeFlipped(viewstate.Input{ApertureHeight: 10, MeasuredDistances: []float64{4, 8}, PrevMeasuredScrollableHeight: 8, NumChildren: 2, MaxChildrenPerScreen: 2})

	m.ObserveWindow(none)
	m.ObserveWindow(some)
	m.ObserveWindow(some)
	m.ObserveWindow(all)

	snap := m.Snapshot()
	if snap.Layouts != 4 {
		t.Errorf("Layouts = %d, want 4", snap.Layouts)
	}
	if snap.TierCounts["none"] != 1 || snap.TierCounts["some"] != 2 || snap.TierCounts["all"] != 1 {
		t.Errorf("unexpected tier counts: %v", snap.TierCounts)
	}
	if snap.LastWindow.NumChildren != 2 {
		t.Errorf("LastWindow.NumChildren = %d, want 2", snap.LastWindow.NumChildren)
	}
	if snap.MaxRendered != 4 {
		t.Errorf("MaxRendered = %d, want 4", snap.MaxRendered)
	}
}

func TestMetrics_ObserveError(t *testing.T) {
	m := NewMetrics()
	m.ObserveError(fmt.Errorf("layout: %w", viewstate.ErrContract))
	m.ObserveError(viewstate.ErrInvariant)
	m.ObserveError(errors.New("other"))
	if got := m.ContractErrors.Load(); got != 2 {
		t.Errorf("ContractErrors = %d, want 2", got)
	}
}

func TestMetrics_SnapshotIsACopy(t *testing.T) {
	m := NewMetrics()
	m.ObserveWindow(viewstate.Window{})
	snap := m.Snapshot()
	snap.TierCounts["none"] = 99
	if m.Snapshot().TierCounts["none"] != 1 {
		t.Error("snapshot map shares state with metrics")
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.AddRendered(2, 3)
				m.AddMeasured(1)
			}
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if snap.ItemsRendered != 2000 {
		t.Errorf("ItemsRendered = %d, want 2000", snap.ItemsRendered)
	}
	if snap.SpacerRows != 3000 {
		t.Errorf("SpacerRows = %d, want 3000", snap.SpacerRows)
	}
	if snap.ItemsMeasured != 1000 {
		t.Errorf("ItemsMeasured = %d, want 1000", snap.ItemsMeasured)
	}
}
