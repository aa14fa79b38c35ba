package pwl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "sigmoid", Sigmoid.String())
	require.Equal(t, "power", Power.String())
	require.Equal(t, "unknown", Kind(200).String())
}

func TestFunctionTable(t *testing.T) {

	t.Run("Sigmoid", func(t *testing.T) {
		fn, err := kindFunction(Sigmoid)
		require.NoError(t, err)
		require.Equal(t, -10.0, fn.lower)
		require.Equal(t, 10.0, fn.upper)
		require.True(t, fn.hasBreak)
		require.Equal(t, 0.0, fn.breakBound)
		require.Equal(t, MaxIterations, fn.maxIterations)

		require.InDelta(t, 0.5, fn.value(0), 1e-15)
		require.InDelta(t, 0.25, fn.deriv(0), 1e-15)
		require.InDelta(t, 1/(1+math.Exp(2.5)), fn.value(-2.5), 1e-14)

		require.True(t, fn.negative(0))
		require.False(t, fn.negative(10))
	})

	t.Run("Tanh", func(t *testing.T) {
		fn, err := kindFunction(Tanh)
		require.NoError(t, err)
		require.Equal(t, -5.0, fn.lower)
		require.Equal(t, 5.0, fn.upper)
		require.InDelta(t, 0.0, fn.value(0), 1e-15)
		require.InDelta(t, 1.0, fn.deriv(0), 1e-15)
		y := math.Tanh(1.25)
		require.InDelta(t, 1-y*y, fn.deriv(1.25), 1e-14)
		require.True(t, fn.negative(0))
		require.False(t, fn.negative(5))
	})

	t.Run("SoftSign", func(t *testing.T) {
		fn, err := kindFunction(SoftSign)
		require.NoError(t, err)
		require.InDelta(t, 2.0/3.0, fn.value(2), 1e-15)
		require.InDelta(t, -2.0/3.0, fn.value(-2), 1e-15)
		require.InDelta(t, 1.0/9.0, fn.deriv(2), 1e-15)
		require.InDelta(t, 1.0/9.0, fn.deriv(-2), 1e-15)
		require.True(t, fn.negative(0))
	})

	t.Run("Exp", func(t *testing.T) {
		fn, err := kindFunction(Exp)
		require.NoError(t, err)
		require.Equal(t, ExpBreak, fn.breakBound)
		require.Equal(t, math.Log(32767), fn.upper)
		require.Equal(t, -math.Log(32767), fn.lower)
		require.True(t, fn.negative(fn.upper))
		require.True(t, fn.negative(fn.lower))
		require.Equal(t, fn.value(1.5), fn.deriv(1.5))
	})

	t.Run("Log", func(t *testing.T) {
		fn, err := kindFunction(Log)
		require.NoError(t, err)
		require.False(t, fn.hasBreak)
		require.Equal(t, MaxIterationsLog, fn.maxIterations)
		require.InDelta(t, 0.0, fn.value(1), 1e-15)
		require.InDelta(t, 0.5, fn.deriv(2), 1e-15)
		require.False(t, fn.negative(fn.upper))
	})

	t.Run("Power", func(t *testing.T) {
		square := powerFunction(2, 1, 0)
		require.Equal(t, -16.0, square.lower)
		require.Equal(t, 16.0, square.upper)
		require.True(t, square.hasBreak)
		require.True(t, square.negative(16))
		require.InDelta(t, 9.0, square.value(3), 1e-15)
		require.InDelta(t, 6.0, square.deriv(3), 1e-15)

		sqrt := powerFunction(0.5, 1, 0)
		require.Equal(t, 0.0, sqrt.lower)
		require.False(t, sqrt.hasBreak)
		require.False(t, sqrt.negative(16))
		require.InDelta(t, 2.0, sqrt.value(4), 1e-15)
		require.InDelta(t, 0.25, sqrt.deriv(4), 1e-15)

		affine := powerFunction(2, 2, 1)
		require.InDelta(t, 25.0, affine.value(2), 1e-15)
		require.InDelta(t, 20.0, affine.deriv(2), 1e-15)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := kindFunction(Power)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})
}
