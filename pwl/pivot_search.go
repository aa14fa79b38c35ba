package pwl

import (
	"fmt"
	"math"
)

// pivotResult is the outcome of one converged pivot search: the emitted
// segments, the equioscillation offset they were centered on, and the
// number of descent iterations spent.
type pivotResult struct {
	segments   Segments
	finalErr   float64
	iterations int
}

// pivotSearch holds the scratch state of one equioscillation descent
// for a fixed segment count. The iteration history is collapsed to the
// current and the previous column since only those two are ever read.
// All slices are owned by the invocation; nothing escapes but the
// emitted segments.
type pivotSearch struct {
	fn       *function
	n        int
	alpha0   float64
	alphaN   float64
	negative bool

	t     []float64 // tangent points, n live entries
	alpha []float64 // segment boundaries, n+1 entries
	eps   []float64 // signed boundary errors, n+1 entries
	d     []float64 // descent steps, n entries

	tPrev     []float64
	alphaPrev []float64
	epsPrev   []float64
}

func newPivotSearch(fn *function, n int, alpha0, alphaN float64, negative bool) *pivotSearch {
	return &pivotSearch{
		fn:       fn,
		n:        n,
		alpha0:   alpha0,
		alphaN:   alphaN,
		negative: negative,

		t:     make([]float64, n),
		alpha: make([]float64, n+1),
		eps:   make([]float64, n+1),
		d:     make([]float64, n),

		tPrev:     make([]float64, n),
		alphaPrev: make([]float64, n+1),
		epsPrev:   make([]float64, n+1),
	}
}

// search runs the equioscillation descent until the boundary errors
// equalize within DesignThreshold or the iteration cap is reached.
func (p *pivotSearch) search() (pivotResult, error) {

	fn, n := p.fn, p.n

	sgn := 1.0
	if p.negative {
		sgn = -1.0
	}

	delta := 1.0
	j := 0

	// Uniform interior tangent points.
	for i := 0; i < n; i++ {
		p.t[i] = p.alpha0 + (float64(i+1)/float64(n+1))*(p.alphaN-p.alpha0)
	}

	var maxEps, maxEpsPrev, minEps float64
	sameEps := false

	for {

		// Segment boundaries: alpha[i] is the intersection of the
		// tangent lines at t[i-1] and t[i]. An intersection that is not
		// finite (equal derivatives) is handled as a local regress below
		// instead of propagating a non-finite boundary; a finite
		// intersection is accepted however small the denominator.
		p.alpha[0] = p.alpha0
		degenerate := false
		for i := 1; i < n; i++ {
			den := fn.deriv(p.t[i]) - fn.deriv(p.t[i-1])
			a := (fn.value(p.t[i-1]) - fn.value(p.t[i]) +
				fn.deriv(p.t[i])*p.t[i] - fn.deriv(p.t[i-1])*p.t[i-1]) / den
			if !isFinite(a) {
				degenerate = true
				break
			}
			p.alpha[i] = a
		}
		p.alpha[n] = p.alphaN

		if !degenerate {

			// Signed error at each boundary.
			for i := 0; i < n; i++ {
				p.eps[i] = sgn * (fn.deriv(p.t[i])*(p.alpha[i]-p.t[i]) +
					fn.value(p.t[i]) - fn.value(p.alpha[i]))
				if !isFinite(p.eps[i]) {
					return pivotResult{}, fmt.Errorf("%w: non-finite error at boundary %d (x=%v)", ErrDomain, i, p.alpha[i])
				}
			}
			p.eps[n] = sgn * (fn.deriv(p.t[n-1])*(p.alphaN-p.t[n-1]) +
				fn.value(p.t[n-1]) - fn.value(p.alphaN))
			if !isFinite(p.eps[n]) {
				return pivotResult{}, fmt.Errorf("%w: non-finite error at boundary %d (x=%v)", ErrDomain, n, p.alphaN)
			}

			maxEpsPrev = maxEps
			maxEps = math.Abs(p.eps[0])
			minEps = math.Abs(p.eps[0])
			for i := 1; i < n+1; i++ {
				maxEps = math.Max(maxEps, math.Abs(p.eps[i]))
				minEps = math.Min(minEps, math.Abs(p.eps[i]))
			}

			if maxEps-minEps < DesignThreshold*minEps {
				return p.emit(sgn, (maxEps+minEps)/4.0, j), nil
			}
			if j == fn.maxIterations {
				return pivotResult{}, fmt.Errorf("%w: pivot search hit the iteration cap (%d) with spread %v", ErrNotConverged, j, maxEps-minEps)
			}

			// On a regress revert to the previous column and halve the
			// step multiplier. A repeated identical maximum gets one
			// second chance before being treated the same way.
			if j > 0 {
				if maxEps > maxEpsPrev {
					p.revert()
					delta = delta / 2
				} else if maxEps == maxEpsPrev {
					if !sameEps {
						sameEps = true
					} else {
						p.revert()
						delta = delta / 2
						sameEps = false
					}
				}
			}

		} else {
			if j == 0 {
				return pivotResult{}, fmt.Errorf("%w: degenerate tangent intersection on the initial column", ErrNotConverged)
			}
			p.revert()
			delta = delta / 2
		}

		if delta < minDelta {
			return pivotResult{}, fmt.Errorf("%w: step multiplier underflow after repeated regressions", ErrNotConverged)
		}

		// Descent step on the tangent points.
		for i := 0; i < n; i++ {
			p.d[i] = delta * (p.eps[i+1] - p.eps[i]) /
				(p.eps[i+1]/(p.alpha[i+1]-p.t[i]) + p.eps[i]/(p.t[i]-p.alpha[i]))
		}

		copy(p.tPrev, p.t)
		copy(p.alphaPrev, p.alpha)
		copy(p.epsPrev, p.eps)
		for i := 0; i < n; i++ {
			p.t[i] += p.d[i]
		}
		j++
	}
}

// revert restores the previous column, undoing the last descent step.
func (p *pivotSearch) revert() {
	copy(p.t, p.tPrev)
	copy(p.alpha, p.alphaPrev)
	copy(p.eps, p.epsPrev)
}

// emit materializes the segments of the current column, shifting each
// tangent line by the equioscillation center so that the residual
// alternates with equal magnitude.
func (p *pivotSearch) emit(sgn, epsFinal float64, iterations int) pivotResult {

	fn, n := p.fn, p.n

	segments := make(Segments, 0, n+1)
	for i := 0; i < n; i++ {
		t := p.t[i]
		v := sgn*fn.deriv(t)*(p.alpha[i]-t) + sgn*fn.value(t) - epsFinal
		vNext := sgn*fn.deriv(t)*(p.alpha[i+1]-t) + sgn*fn.value(t) - epsFinal
		m := (vNext - v) / (p.alpha[i+1] - p.alpha[i])
		segments = append(segments, Segment{Alpha: p.alpha[i], M: m, B: v - m*p.alpha[i]})
	}
	segments = append(segments, Segment{Alpha: p.alphaN})

	return pivotResult{segments: segments, finalErr: epsFinal, iterations: iterations}
}
