package pwl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPivotSearch(t *testing.T) {

	sigmoid, err := kindFunction(Sigmoid)
	require.NoError(t, err)

	t.Run("SingleSegment", func(t *testing.T) {
		res, err := newPivotSearch(&sigmoid, 1, 0, 10, false).search()
		require.NoError(t, err)
		require.Len(t, res.segments, 2)
		require.Equal(t, 0.0, res.segments[0].Alpha)
		require.Equal(t, 10.0, res.segments[1].Alpha)
		require.Greater(t, res.finalErr, 0.0)
		require.Greater(t, res.iterations, 0)
	})

	t.Run("ErrorShrinksWithSegmentCount", func(t *testing.T) {
		one, err := newPivotSearch(&sigmoid, 1, 0, 10, false).search()
		require.NoError(t, err)
		four, err := newPivotSearch(&sigmoid, 4, 0, 10, false).search()
		require.NoError(t, err)
		require.Less(t, four.finalErr, one.finalErr)
	})

	t.Run("BoundariesIncrease", func(t *testing.T) {
		res, err := newPivotSearch(&sigmoid, 6, 0, 10, false).search()
		require.NoError(t, err)
		require.Len(t, res.segments, 7)
		for i := 1; i < len(res.segments); i++ {
			require.Greater(t, res.segments[i].Alpha, res.segments[i-1].Alpha)
		}
	})

	t.Run("ResidualBounded", func(t *testing.T) {
		res, err := newPivotSearch(&sigmoid, 5, 0, 10, false).search()
		require.NoError(t, err)
		// The emitted piecewise-linear function deviates from f by no
		// more than a small multiple of the equioscillation offset.
		for i := 0; i <= 200; i++ {
			x := float64(i) * 10.0 / 200.0
			dev := math.Abs(sigmoid.value(x) - res.segments.Evaluate(x))
			require.LessOrEqual(t, dev, 4*res.finalErr, "x=%v", x)
		}
	})

	t.Run("NegatedSubdomain", func(t *testing.T) {
		// The left sigmoid half is convex and is searched as -f.
		res, err := newPivotSearch(&sigmoid, 4, -10, 0, true).search()
		require.NoError(t, err)
		for i := 0; i <= 100; i++ {
			x := -10 + float64(i)*10.0/100.0
			dev := math.Abs(sigmoid.value(x) + res.segments.Evaluate(x))
			require.LessOrEqual(t, dev, 4*res.finalErr, "x=%v", x)
		}
	})

	t.Run("DomainError", func(t *testing.T) {
		logFn, err := kindFunction(Log)
		require.NoError(t, err)
		_, err = newPivotSearch(&logFn, 1, 0, 1, false).search()
		require.ErrorIs(t, err, ErrDomain)
	})

	t.Run("Exp", func(t *testing.T) {
		expFn, err := kindFunction(Exp)
		require.NoError(t, err)
		res, err := newPivotSearch(&expFn, 8, ExpBreak, 4, true).search()
		require.NoError(t, err)
		require.Len(t, res.segments, 9)
		for i := 0; i <= 100; i++ {
			x := ExpBreak + float64(i)*(4-ExpBreak)/100.0
			dev := math.Abs(expFn.value(x) + res.segments.Evaluate(x))
			require.LessOrEqual(t, dev, 4*res.finalErr, "x=%v", x)
		}
	})
}
