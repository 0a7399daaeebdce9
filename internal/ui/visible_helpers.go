package ui

import "flipview/internal/core/search"

// visibleItems returns the newest and oldest item indices that intersect the
// aperture, derived from the measured distances. ok is false when nothing
// measured is on screen.
func (m *Model) visibleItems() (newest, oldest int, ok bool) {
	d := m.table.Distances()
	if len(d) == 0 {
		return 0, 0, false
	}
	bottom := m.bottomDistance()
	top := bottom + float64(m.viewport.Height)
	if top <= 0 {
		return 0, 0, false
	}

	// the item covering the bottom edge is the one after the last distance
	// at or below it
	newest = 0
	if bottom > 0 {
		if i, found := search.Index(d, bottom, search.ClosestLower); found {
			newest = i + 1
		}
	}
	if newest >= len(d) {
		return 0, 0, false
	}

	// the item covering the top edge is the first whose far edge reaches it
	oldest = len(d) - 1
	if i, found := search.Index(d, top, search.ClosestHigher); found {
		oldest = i
	}
	return newest, oldest, true
}
