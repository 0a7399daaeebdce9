package viewstate

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrContract marks inputs that break the caller contract.
	ErrContract = errors.New("viewstate: contract violation")
	// ErrInvariant marks a computed window that fails its own invariants,
	// which points at broken measurement bookkeeping upstream.
	ErrInvariant = errors.New("viewstate: invariant violation")
)

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// below reports a < b beyond float rounding of sums over pixel heights.
func below(a, b float64) bool {
	return a < b-1e-9*math.Max(1, math.Abs(b))
}

func contractf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContract, fmt.Sprintf(format, args...))
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// checkInput enforces the preconditions of ComputeFlipped.
func checkInput(in Input) error {
	if !isFinite(in.PrevMeasuredScrollableHeight) {
		return contractf("previous scrollable height %v is not finite", in.PrevMeasuredScrollableHeight)
	}
	if !isFinite(in.ApertureHeight) || in.ApertureHeight < 0 {
		return contractf("aperture height %v", in.ApertureHeight)
	}
	if !isFinite(in.ScrollTop) {
		return contractf("scroll top %v is not finite", in.ScrollTop)
	}
	if in.NumChildren < 0 {
		return contractf("negative child count %d", in.NumChildren)
	}
	if in.MaxChildrenPerScreen < 0 {
		return contractf("negative children per screen %d", in.MaxChildrenPerScreen)
	}
	if len(in.MeasuredDistances) > in.NumChildren {
		return contractf("%d measured distances for %d children", len(in.MeasuredDistances), in.NumChildren)
	}
	prev := 0.0
	for i, d := range in.MeasuredDistances {
		if !isFinite(d) || d < prev {
			return contractf("distance[%d]=%v after %v", i, d, prev)
		}
		prev = d
	}
	return nil
}

// Validate reports the first invariant the window breaks, if any.
func (w Window) Validate() error {
	if span := w.ApertureBottom - w.ApertureTop; below(span, w.ApertureHeight) || below(w.ApertureHeight, span) {
		return invariantf("aperture %v..%v does not span %v", w.ApertureTop, w.ApertureBottom, w.ApertureHeight)
	}
	if w.VisibleStart < 0 || w.VisibleStart > w.NumChildren {
		return invariantf("visible start %d outside [0, %d]", w.VisibleStart, w.NumChildren)
	}
	if w.VisibleEnd < 0 {
		return invariantf("visible end %d", w.VisibleEnd)
	}
	if w.VisibleEnd < w.VisibleStart+w.MaxChildrenPerScreen {
		return invariantf("visible end %d leaves no reserve after %d", w.VisibleEnd, w.VisibleStart)
	}
	if !isFinite(w.VisibleStartHeight) || w.VisibleStartHeight < 0 {
		return invariantf("visible start height %v", w.VisibleStartHeight)
	}
	if w.VisibleEndHeight.Valid && (!isFinite(w.VisibleEndHeight.Value) || w.VisibleEndHeight.Value < 0) {
		return invariantf("visible end height %v", w.VisibleEndHeight.Value)
	}
	if !isFinite(w.FrontSpace) || w.FrontSpace < 0 {
		return invariantf("front space %v", w.FrontSpace)
	}
	if !isFinite(w.BackSpace) || w.BackSpace < 0 {
		return invariantf("back space %v", w.BackSpace)
	}
	for name, h := range map[string]Height{
		"perfect children height":  w.PerfectChildrenHeight,
		"measured children height": w.MeasuredChildrenHeight,
		"displayables height":      w.DisplayablesHeight,
	} {
		if h.Valid && !isFinite(h.Value) {
			return invariantf("%s %v", name, h.Value)
		}
	}
	if w.AnyHeightsMeasured {
		if !w.MeasuredScrollableHeight.Valid || !w.MeasuredChildrenHeight.Valid {
			return invariantf("scrollable height unknown with %d items measured", w.NumItemsMeasured)
		}
		if below(w.MeasuredScrollableHeight.Value, w.MeasuredChildrenHeight.Value) {
			return invariantf("scrollable height %v below children height %v",
				w.MeasuredScrollableHeight.Value, w.MeasuredChildrenHeight.Value)
		}
	}
	return nil
}
