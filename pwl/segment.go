package pwl

import (
	"fmt"
	"math"
	"sort"
)

// Segment is one affine piece of a piecewise-linear function. Alpha is
// the left endpoint of the segment's interval on the input axis; M and
// B are the slope and intercept, so the segment evaluates y = M*x + B
// for x in [Alpha, nextAlpha). The last segment of a sequence is a
// terminal sentinel (alphaN, 0, 0) carrying only the right domain edge.
type Segment struct {
	Alpha float64
	M     float64
	B     float64
}

// Segments is an ordered segment sequence covering a closed domain
// [Alpha0, AlphaN]. The sequence always ends with a terminal sentinel
// whose Alpha is the right domain edge.
type Segments []Segment

// Evaluate computes the piecewise-linear value at x. Inputs below the
// first alpha are evaluated on the first segment and inputs at or
// beyond the terminal alpha on the last live segment, mirroring the
// saturating behavior of the accelerator runtime.
func (s Segments) Evaluate(x float64) float64 {
	// Index of the first alpha strictly greater than x, over the live
	// segments only.
	i := sort.Search(len(s)-1, func(i int) bool { return x < s[i].Alpha })
	if i > 0 {
		i--
	}
	return s[i].M*x + s[i].B
}

// Arrays materializes the three parallel arrays embedded into the
// computation graph: m and b over the live segments, and alpha over all
// segments including the terminal sentinel.
func (s Segments) Arrays() (m, b, alpha []float64) {
	if len(s) == 0 {
		return
	}
	m = make([]float64, len(s)-1)
	b = make([]float64, len(s)-1)
	alpha = make([]float64, len(s))
	for i := range s[:len(s)-1] {
		m[i] = s[i].M
		b[i] = s[i].B
		alpha[i] = s[i].Alpha
	}
	alpha[len(s)-1] = s[len(s)-1].Alpha
	return
}

// Negate flips the sign of the slope and intercept of every segment in
// place. The terminal sentinel is unaffected since both of its
// coefficients are zero.
func (s Segments) Negate() {
	for i := range s {
		s[i].M = -s[i].M
		s[i].B = -s[i].B
	}
}

// Validate checks the structural invariants of a finished sequence:
// at least two segments, finite coefficients and strictly increasing
// alphas.
func (s Segments) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: sequence has %d segments, need at least 2", ErrInvalidDomain, len(s))
	}
	for i := range s {
		if !isFinite(s[i].Alpha) || !isFinite(s[i].M) || !isFinite(s[i].B) {
			return fmt.Errorf("%w: segment %d has a non-finite coefficient", ErrDomain, i)
		}
		if i > 0 && s[i].Alpha <= s[i-1].Alpha {
			return fmt.Errorf("%w: alphas are not strictly increasing at segment %d", ErrInvalidDomain, i)
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
