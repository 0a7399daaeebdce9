package measure

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegative is returned for heights that are negative or not finite.
	ErrNegative = errors.New("measure: invalid height")
	// ErrGap is returned when a measurement would leave unmeasured items
	// in front of it.
	ErrGap = errors.New("measure: measurement out of order")
)

// Table keeps cumulative item heights from the front of a list. It only ever
// grows by appending, so the distances handed to the window computation are
// a prefix-extension of whatever was handed over before.
type Table struct {
	distances []float64
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{} }

// Len returns the number of measured items.
func (t *Table) Len() int { return len(t.distances) }

// Total returns the cumulative height of all measured items.
func (t *Table) Total() float64 {
	if len(t.distances) == 0 {
		return 0
	}
	return t.distances[len(t.distances)-1]
}

// Append measures the next items in order.
func (t *Table) Append(heights ...float64) error {
	for _, h := range heights {
		if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
			return fmt.Errorf("%w: %v at index %d", ErrNegative, h, len(t.distances))
		}
		t.distances = append(t.distances, t.Total()+h)
	}
	return nil
}

// Record stores the height of item index. Already measured items keep their
// first measurement; index must otherwise be the next unmeasured item.
func (t *Table) Record(index int, height float64) error {
	switch {
	case index < 0:
		return fmt.Errorf("%w: index %d", ErrGap, index)
	case index < len(t.distances):
		return nil
	case index > len(t.distances):
		return fmt.Errorf("%w: index %d with %d measured", ErrGap, index, len(t.distances))
	}
	return t.Append(height)
}

// Height returns the measured height of a single item.
func (t *Table) Height(index int) (float64, bool) {
	if index < 0 || index >= len(t.distances) {
		return 0, false
	}
	if index == 0 {
		return t.distances[0], true
	}
	return t.distances[index] - t.distances[index-1], true
}

// Distances returns a copy of the cumulative distances.
func (t *Table) Distances() []float64 {
	out := make([]float64, len(t.distances))
	copy(out, t.distances)
	return out
}

// Reset forgets every measurement, e.g. after the render width changed.
func (t *Table) Reset() { t.distances = t.distances[:0] }
