package search

// Mode selects how Index treats a target that is not present in the sequence.
type Mode int

const (
	// Exact matches only a value equal to the target.
	Exact Mode = iota
	// ClosestHigher matches the smallest value >= target.
	ClosestHigher
	// ClosestLower matches the largest value <= target.
	ClosestLower
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case ClosestHigher:
		return "closest-higher"
	case ClosestLower:
		return "closest-lower"
	default:
		return "unknown"
	}
}

// Index binary-searches seq, which must be non-decreasing, for target.
// It returns the matching index and true, or -1 and false when mode finds
// nothing. seq is never modified.
//
// With duplicate values Exact and ClosestHigher report the first occurrence,
// ClosestLower the last.
func Index(seq []float64, target float64, mode Mode) (int, bool) {
	switch mode {
	case Exact:
		i := lowerBound(seq, target)
		if i < len(seq) && seq[i] == target {
			return i, true
		}
		return -1, false
	case ClosestHigher:
		i := lowerBound(seq, target)
		if i < len(seq) {
			return i, true
		}
		return -1, false
	case ClosestLower:
		i := upperBound(seq, target) - 1
		if i >= 0 {
			return i, true
		}
		return -1, false
	default:
		return -1, false
	}
}

// CountLess returns the number of leading values in seq strictly below target.
// For a non-decreasing seq this equals a linear take-while scan.
func CountLess(seq []float64, target float64) int {
	return lowerBound(seq, target)
}

// lowerBound returns the first index whose value is >= target, or len(seq).
func lowerBound(seq []float64, target float64) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if seq[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the first index whose value is > target, or len(seq).
func upperBound(seq []float64, target float64) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if seq[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
