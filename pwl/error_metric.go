package pwl

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrorStats summarizes the deviation between an activation and its
// piecewise-linear approximation over a sampled domain. Max is the
// authoritative metric driving the segment search; the remaining
// fields describe the deviation distribution.
type ErrorStats struct {
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// calculateError samples the sub-domain with DesignSamples uniformly
// spaced inputs starting at the lower endpoint and audits the maximum
// absolute deviation |f(x) - sgn*y(x)| of the candidate segments. A
// negative-width domain yields zero error.
func calculateError(fn *function, segments Segments, lower, upper float64, negative bool) (ErrorStats, error) {

	sgn := 1.0
	if negative {
		sgn = -1.0
	}

	delta := (upper - lower) / float64(DesignSamples+1)
	if delta < 0 {
		return ErrorStats{}, nil
	}

	deviations := make([]float64, DesignSamples)
	for i := 0; i < DesignSamples; i++ {
		x := lower + float64(i)*delta
		y := segments.Evaluate(x)
		dev := math.Abs(fn.value(x) - sgn*y)
		if !isFinite(dev) {
			return ErrorStats{}, fmt.Errorf("%w: non-finite deviation at x=%v", ErrDomain, x)
		}
		deviations[i] = dev
	}

	max, err := stats.Max(deviations)
	if err != nil {
		return ErrorStats{}, fmt.Errorf("deviation summary: %w", err)
	}
	mean, _ := stats.Mean(deviations)
	median, _ := stats.Median(deviations)
	stddev, _ := stats.StandardDeviation(deviations)

	return ErrorStats{Max: max, Mean: mean, Median: median, StdDev: stddev}, nil
}
