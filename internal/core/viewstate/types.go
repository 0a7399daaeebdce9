package viewstate

import "fmt"

// Height is a distance that may not be known yet.
type Height struct {
	Value float64
	Valid bool
}

// Known wraps v as a valid Height.
func Known(v float64) Height { return Height{Value: v, Valid: true} }

// Or returns the value when valid and def otherwise.
func (h Height) Or(def float64) float64 {
	if !h.Valid {
		return def
	}
	return h.Value
}

func (h Height) String() string {
	if !h.Valid {
		return "-"
	}
	return fmt.Sprintf("%g", h.Value)
}

// Input is the full argument set of a flipped window computation.
type Input struct {
	// ApertureHeight is the height of the visible viewport.
	ApertureHeight float64
	// MeasuredDistances[i] is the cumulative height of items [0..i], measured
	// from the front of the list (the bottom of the scroll area).
	MeasuredDistances []float64
	// ScrollTop is the offset of the aperture from the top of the scroll area
	// as laid out on the previous render.
	ScrollTop float64
	// PrevMeasuredScrollableHeight is the total scrollable height of the
	// previous render. ScrollTop is relative to it.
	PrevMeasuredScrollableHeight float64
	// NumChildren is the logical item count, measured or not.
	NumChildren int
	// MaxChildrenPerScreen estimates how many items fit in one aperture.
	MaxChildrenPerScreen int
}

// Window is the result of a flipped window computation. Items in
// [VisibleStart, VisibleEnd) are rendered; FrontSpace stands in for the
// elided items in front of the window (below it on screen) and BackSpace for
// those behind it (above it on screen).
type Window struct {
	VisibleStart       int
	VisibleEnd         int
	VisibleStartHeight float64
	VisibleEndHeight   Height
	FrontSpace         float64
	BackSpace          float64

	ApertureHeight float64
	ApertureTop    float64
	ApertureBottom float64

	NumItemsMeasured        int
	AnyHeightsMeasured      bool
	AllHeightsMeasured      bool
	PerfectChildrenHeight   Height
	MeasuredChildrenHeight  Height
	DisplayablesHeight      Height
	PerfectScrollableHeight Height
	// MeasuredScrollableHeight = FrontSpace + DisplayablesHeight + BackSpace,
	// valid once anything is measured.
	MeasuredScrollableHeight Height

	NumChildren          int
	MaxChildrenPerScreen int
}

// RenderRange returns the slice of real items a renderer should draw.
// VisibleEnd includes a reserve that may run past NumChildren; the range is
// clamped to the items that exist.
func (w Window) RenderRange() (start, end int) {
	start, end = w.VisibleStart, w.VisibleEnd
	if end > w.NumChildren {
		end = w.NumChildren
	}
	if start > end {
		start = end
	}
	return start, end
}

// ScrollableHeight is the total height the window lays out: both spacers plus
// the displayed segment, with unknown parts counted as zero. It is what the
// next computation should receive as PrevMeasuredScrollableHeight.
func (w Window) ScrollableHeight() float64 {
	return w.FrontSpace + w.DisplayablesHeight.Or(0) + w.BackSpace
}
