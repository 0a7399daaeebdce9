package ui

import "math"

const maxJumpPasses = 8

// clampScroll keeps scrollTop inside the content composed last frame.
func (m *Model) clampScroll() {
	maxTop := m.scroll.prevHeight - float64(m.viewport.Height)
	if maxTop < 0 {
		maxTop = 0
	}
	m.scroll.scrollTop = min(max(m.scroll.scrollTop, 0), maxTop)
}

// scrollBy moves the aperture by delta rows (negative is towards older
// messages) and lays the list out again.
func (m *Model) scrollBy(delta int) {
	m.scroll.scrollTop += float64(delta)
	m.clampScroll()
	m.layout()
}

// scrollToNewest puts the aperture bottom on the newest message.
func (m *Model) scrollToNewest() {
	m.scroll.scrollTop = m.scroll.prevHeight - float64(m.viewport.Height)
	m.clampScroll()
	m.layout()
}

// jumpToItem scrolls so item i is on screen. The item is measured first so
// its distance from the front is exact. By default its bottom edge sits on
// the aperture bottom; alignTop (or an item taller than the aperture) puts
// its top edge on the aperture top instead.
func (m *Model) jumpToItem(i int, alignTop bool) {
	if i < 0 || i >= len(m.items) {
		return
	}
	m.measureThrough(i)
	if i >= m.table.Len() {
		return
	}
	d := m.table.Distances()
	below := 0.0
	if i > 0 {
		below = d[i-1]
	}
	aperture := float64(m.viewport.Height)
	bottomDist := below
	if h := d[i] - below; alignTop || h > aperture {
		bottomDist = max(d[i]-aperture, 0)
	}
	// the first passes may be clamped by a back spacer that is still an
	// underestimate; each layout grows it from the new measurements
	for range maxJumpPasses {
		m.scroll.scrollTop = m.scroll.prevHeight - aperture - bottomDist
		m.clampScroll()
		m.layout()
		if m.layoutErr != nil || math.Abs(m.bottomDistance()-bottomDist) < 0.5 {
			return
		}
	}
}

// bottomDistance is the distance of the aperture bottom from the front.
func (m *Model) bottomDistance() float64 {
	return m.scroll.prevHeight - m.scroll.scrollTop - float64(m.viewport.Height)
}
