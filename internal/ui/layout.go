package ui

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"flipview/internal/core/viewstate"
	"flipview/internal/infra/logx"
	"flipview/internal/measure"
	"flipview/internal/render"
)

// defaultItemRows is the assumed item height before anything is measured:
// author line, one body line and the gap row.
const defaultItemRows = 3

// block returns the rendered rows of item i, including the trailing gap row.
func (m *Model) block(i int) string {
	if b, ok := m.blocks[i]; ok {
		return b
	}
	b := m.renderer.Render(m.items[i]) + "\n"
	m.blocks[i] = b
	return b
}

// measureThrough records the heights of all loaded items up to and including
// index last that are not measured yet. Items are measured in order so the
// table stays a gap-free prefix.
func (m *Model) measureThrough(last int) int {
	if last >= len(m.items) {
		last = len(m.items) - 1
	}
	n := 0
	for i := m.table.Len(); i <= last; i++ {
		h := render.Height(m.block(i))
		if err := m.table.Record(i, float64(h)); err != nil {
			logx.Errorf("measure item %d: %v", i, err)
			break
		}
		n++
	}
	if n > 0 {
		m.metrics.AddMeasured(n)
	}
	return n
}

// perScreen returns the configured screenful of items, or derives one from
// the smallest measured item so a screen never holds more than the estimate.
func (m *Model) perScreen() int {
	if m.cfg.MaxChildrenPerScreen > 0 {
		return m.cfg.MaxChildrenPerScreen
	}
	minRows := float64(defaultItemRows)
	for i := 0; i < m.table.Len(); i++ {
		if h, ok := m.table.Height(i); ok && h > 0 && h < minRows {
			minRows = h
		}
	}
	n := int(math.Ceil(float64(m.viewport.Height) / minRows))
	return max(n, 1)
}

func spacerRows(f float64) int {
	return max(int(math.Round(f)), 0)
}

// layout computes the window for the current scroll position, renders it and
// re-anchors the scroll offset against the bottom edge so content that grows
// above the aperture does not move what is on screen.
func (m *Model) layout() {
	in := viewstate.Input{
		ApertureHeight:               float64(m.viewport.Height),
		MeasuredDistances:            m.table.Distances(),
		ScrollTop:                    m.scroll.scrollTop,
		PrevMeasuredScrollableHeight: m.scroll.prevHeight,
		NumChildren:                  len(m.items),
		MaxChildrenPerScreen:         m.perScreen(),
	}
	w, err := viewstate.ComputeFlipped(in)
	if err != nil {
		m.layoutErr = err
		m.metrics.ObserveError(err)
		logx.With(logx.LevelError, "layout failed",
			zap.Error(err),
			zap.Float64("scroll_top", in.ScrollTop),
			zap.Float64("prev_height", in.PrevMeasuredScrollableHeight),
			zap.Int("num_children", in.NumChildren),
		)
		return
	}
	m.layoutErr = nil
	m.window = w
	m.metrics.ObserveWindow(w)

	start, end := w.RenderRange()
	m.measureThrough(end - 1)
	content, height := m.compose(w, start, end)

	m.scroll.scrollTop += height - m.scroll.prevHeight
	m.scroll.prevHeight = height
	m.clampScroll()
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(int(math.Round(m.scroll.scrollTop)))
	logx.Debugf("layout: %s range=[%d,%d) back=%g front=%g height=%g top=%g",
		measure.Tier(w), start, end, w.BackSpace, w.FrontSpace, height, m.scroll.scrollTop)
}

// compose stacks the frame top to bottom: padding up to one aperture, the
// back spacer, items from the oldest rendered down to the newest, and the
// front spacer. It returns the content and its height in rows.
func (m *Model) compose(w viewstate.Window, start, end int) (string, float64) {
	back := spacerRows(w.BackSpace)
	front := spacerRows(w.FrontSpace)

	parts := make([]string, 0, end-start+3)
	total := 0
	if back > 0 {
		parts = append(parts, render.Spacer(back))
		total += back
	}
	for i := end - 1; i >= start; i-- {
		b := m.block(i)
		parts = append(parts, b)
		total += render.Height(b)
	}
	if front > 0 {
		parts = append(parts, render.Spacer(front))
		total += front
	}
	if pad := m.viewport.Height - total; pad > 0 {
		parts = append([]string{render.Spacer(pad)}, parts...)
		total += pad
	}
	m.metrics.AddRendered(end-start, back+front)
	return strings.Join(parts, "\n"), float64(total)
}

// resetLayout drops all measurements, e.g. after the width changed.
func (m *Model) resetLayout() {
	m.table.Reset()
	clear(m.blocks)
	m.scroll = ScrollState{}
}
