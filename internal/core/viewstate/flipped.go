// Package viewstate computes which items of a virtualized list to render and
// how much filler space stands in for the rest.
package viewstate

import (
	"flipview/internal/core/search"
)

// ComputeFlipped computes the render window of a bottom-anchored list.
//
// Measured distances are stored front-relative while the aperture is measured
// from the top of the previous render, so the aperture is first converted to
// distances from the front and then looked up in the same cumulative table a
// forward list would use.
//
// When heights are missing the window errs on the side of rendering more:
// one extra screenful of items always sits past the visible end so the user
// can never scroll onto an unrendered edge, and boundary heights of items that
// are about to be measured fall back to the last measurement we have.
func ComputeFlipped(in Input) (Window, error) {
	if err := checkInput(in); err != nil {
		return Window{}, err
	}

	d := in.MeasuredDistances
	apertureTop := in.ScrollTop
	apertureBottom := in.ScrollTop + in.ApertureHeight
	visibleStartDistance := in.PrevMeasuredScrollableHeight - apertureBottom
	visibleEndDistance := in.PrevMeasuredScrollableHeight - apertureTop

	visibleStart := search.CountLess(d, visibleStartDistance)

	numItemsMeasured := len(d)
	anyHeightsMeasured := numItemsMeasured > 0
	allHeightsMeasured := numItemsMeasured == in.NumChildren

	var perfectChildrenHeight, measuredChildrenHeight Height
	if anyHeightsMeasured {
		measuredChildrenHeight = Known(d[numItemsMeasured-1])
		if allHeightsMeasured {
			perfectChildrenHeight = measuredChildrenHeight
		}
	}

	// visibleEnd is exclusive: [visibleStart, visibleEnd).
	var visibleEnd int
	if allHeightsMeasured {
		if i, ok := search.Index(d, visibleEndDistance, search.ClosestHigher); ok {
			// One past the item straddling the aperture top. Changing this
			// shifts the reserve below.
			visibleEnd = i + 1
		} else {
			visibleEnd = numItemsMeasured
		}
	} else {
		visibleEnd = visibleStart + in.MaxChildrenPerScreen
	}
	// A screenful that is never on screen. Adding items rather than back
	// space means scrolling to the end bumps into the last child instead of
	// empty room.
	visibleEnd += in.MaxChildrenPerScreen

	numNewlyVisible := max(0, visibleEnd-numItemsMeasured)
	visibleEndHeight := bestKnownHeight(d, visibleEnd-numNewlyVisible-1)
	visibleStartHeight := 0.0
	if visibleStart-numNewlyVisible > 0 {
		visibleStartHeight = bestKnownHeight(d, visibleStart-numNewlyVisible-1).Or(0)
	}

	var displayablesHeight Height
	if anyHeightsMeasured {
		displayablesHeight = Known(visibleEndHeight.Or(0) - visibleStartHeight)
	}

	frontSpace := 0.0
	if visibleStart > 0 && anyHeightsMeasured {
		frontSpace = d[visibleStart-1]
	}

	var backSpace float64
	switch {
	case allHeightsMeasured && anyHeightsMeasured:
		backSpace = perfectChildrenHeight.Value - d[min(visibleEnd, numItemsMeasured)-1]
	case anyHeightsMeasured:
		// More items exist than we have seen. The reserve screenful is
		// already inside visibleEndHeight, so what is left is slack.
		backSpace = measuredChildrenHeight.Value - visibleEndHeight.Or(0)
	default:
		// Nothing measured yet: leave one screenful to scroll into.
		backSpace = in.ApertureHeight
	}

	var measuredScrollableHeight Height
	if anyHeightsMeasured {
		measuredScrollableHeight = Known(frontSpace + displayablesHeight.Value + backSpace)
	}

	w := Window{
		VisibleStart:       visibleStart,
		VisibleEnd:         visibleEnd,
		VisibleStartHeight: visibleStartHeight,
		VisibleEndHeight:   visibleEndHeight,
		FrontSpace:         frontSpace,
		BackSpace:          backSpace,

		ApertureHeight: in.ApertureHeight,
		ApertureTop:    apertureTop,
		ApertureBottom: apertureBottom,

		NumItemsMeasured:         numItemsMeasured,
		AnyHeightsMeasured:       anyHeightsMeasured,
		AllHeightsMeasured:       allHeightsMeasured,
		PerfectChildrenHeight:    perfectChildrenHeight,
		MeasuredChildrenHeight:   measuredChildrenHeight,
		DisplayablesHeight:       displayablesHeight,
		PerfectScrollableHeight:  perfectChildrenHeight,
		MeasuredScrollableHeight: measuredScrollableHeight,

		NumChildren:          in.NumChildren,
		MaxChildrenPerScreen: in.MaxChildrenPerScreen,
	}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Flipped is ComputeFlipped with positional arguments.
func Flipped(apertureHeight float64, measuredDistances []float64, scrollTop, prevMeasuredScrollableHeight float64, numChildren, maxChildrenPerScreen int) (Window, error) {
	return ComputeFlipped(Input{
		ApertureHeight:               apertureHeight,
		MeasuredDistances:            measuredDistances,
		ScrollTop:                    scrollTop,
		PrevMeasuredScrollableHeight: prevMeasuredScrollableHeight,
		NumChildren:                  numChildren,
		MaxChildrenPerScreen:         maxChildrenPerScreen,
	})
}

// MustComputeFlipped is ComputeFlipped for inputs already known to be valid.
// It panics on any contract or invariant error.
func MustComputeFlipped(in Input) Window {
	w, err := ComputeFlipped(in)
	if err != nil {
		panic(err)
	}
	return w
}

// bestKnownHeight returns the cumulative distance at index i. Indices past
// the measured data resolve to the last measurement, which is stale by at
// most one screenful until layout measures the new items. Negative indices
// mean nothing is elided and yield an invalid Height.
func bestKnownHeight(d []float64, i int) Height {
	if i < 0 || len(d) == 0 {
		return Height{}
	}
	if i >= len(d) {
		i = len(d) - 1
	}
	return Known(d[i])
}
