package pwl

import "fmt"

// splitSearch reports whether the search domain straddles the
// function's break point, in which case each half is fitted separately
// and the halves are stitched back with the parity sign flips applied.
func splitSearch(fn *function, lower, upper float64) bool {
	if lower > upper {
		return false
	}
	return fn.hasBreak && lower < fn.breakBound && upper > fn.breakBound
}

// searchMonotone grows the segment count from one upward on a domain
// free of interior break points, re-running the pivot search and the
// deviation audit until the budget is met or the cap is reached. The
// returned segments approximate sgn*f; the caller restores the sign.
func searchMonotone(fn *function, lower, upper, maxErr float64) (segments Segments, audited float64, negative bool, err error) {

	negative = fn.negative(upper)

	n := 1
	res, err := newPivotSearch(fn, n, lower, upper, negative).search()
	if err != nil {
		return nil, 0, negative, err
	}
	audit, err := calculateError(fn, res.segments, lower, upper, negative)
	if err != nil {
		return nil, 0, negative, err
	}

	for n < fn.maxSegments && audit.Max > maxErr {
		n++
		if res, err = newPivotSearch(fn, n, lower, upper, negative).search(); err != nil {
			return nil, 0, negative, err
		}
		if audit, err = calculateError(fn, res.segments, lower, upper, negative); err != nil {
			return nil, 0, negative, err
		}
	}

	if n >= fn.maxSegments && audit.Max > maxErr {
		return nil, 0, negative, fmt.Errorf("%w: deviation %v still above budget %v at %d segments", ErrNotConverged, audit.Max, maxErr, n)
	}

	return res.segments, audit.Max, negative, nil
}

// pwlSearch fits the activation over [lower, upper], splitting at the
// break point when the domain straddles it. The returned segments
// always approximate +f; the split halves' parity flips and the
// negated sub-domain flip are applied here, never inside the solver.
func pwlSearch(fn *function, lower, upper, maxErr float64) (Segments, float64, error) {

	if splitSearch(fn, lower, upper) {

		left, errLeft, leftNegative, err := searchMonotone(fn, lower, fn.breakBound, maxErr)
		if err != nil {
			return nil, 0, fmt.Errorf("left half [%v, %v]: %w", lower, fn.breakBound, err)
		}
		if leftNegative {
			left.Negate()
		}

		right, errRight, rightNegative, err := searchMonotone(fn, fn.breakBound, upper, maxErr)
		if err != nil {
			return nil, 0, fmt.Errorf("right half [%v, %v]: %w", fn.breakBound, upper, err)
		}
		if rightNegative {
			right.Negate()
		}

		// The left terminal sentinel coincides with the right lower
		// edge and is dropped on concatenation. The averaged error is
		// a growth heuristic; the per-half audits remain authoritative.
		merged := append(left[:len(left)-1], right...)
		return merged, (errLeft + errRight) / 2, nil
	}

	segments, audited, negative, err := searchMonotone(fn, lower, upper, maxErr)
	if err != nil {
		return nil, 0, err
	}
	if negative {
		segments.Negate()
	}
	return segments, audited, nil
}
