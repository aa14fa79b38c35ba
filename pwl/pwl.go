/*
Package pwl designs piecewise-linear approximations of smooth scalar
activation functions (sigmoid, tanh, exp, log, softsign, power) so that
a fixed-point inference accelerator, which can only evaluate affine
segments, can realize these non-linearities within a bounded per-point
error.

Given an activation, an input domain [L, U] and an error budget, the
package produces the minimum-length ordered sequence of linear segments
fitting the function within the budget. The fit is computed by an
equioscillation descent (a multi-segment generalization of the
Chebyshev/Remez minimax problem specialized to functions with a
monotone second derivative on each sub-domain), wrapped in an outer
search that grows the segment count until the budget is met.
*/
package pwl

// Design constants. All values are bit-exact and shared between the
// pivot search, the error audit and the outer segment search.
const (
	// ExpBreak is the empirical domain split point for the exponential.
	ExpBreak = 0.045

	// DesignThreshold is the relative spread (maxErr-minErr)/minErr
	// under which the pivot search is considered converged.
	DesignThreshold = 0.1

	// DesignSamples is the number of uniformly spaced inputs used to
	// audit the maximum deviation of a candidate segment sequence.
	DesignSamples = 500

	// MaxSegments bounds the outer segment-count search.
	MaxSegments = 128

	// MaxIterations bounds the pivot search descent. The logarithm is
	// harder to condition and receives a larger cap.
	MaxIterations    = 2000
	MaxIterationsLog = 5000
)

// Identity segment sentinels. The identity approximation covers the
// full signed 32-bit input range of the accelerator.
const (
	identityLower = float64(-2147483648) // INT32_MIN
	identityUpper = float64(2147483647)  // INT32_MAX
)

// minDelta is the floor of the descent step-size multiplier. The
// multiplier is halved on every regress of the pivot search; once it
// falls below this floor the iteration cannot make progress anymore.
const minDelta = 1e-12
