package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNGDeterminism(t *testing.T) {

	a, err := NewKeyedPRNG([]byte("seed"))
	require.NoError(t, err)
	b, err := NewKeyedPRNG([]byte("seed"))
	require.NoError(t, err)

	for i := 0; i < 16; i++ {
		require.Equal(t, RandUint64(a), RandUint64(b))
	}

	require.Equal(t, []byte("seed"), a.Key())
}

func TestKeyedPRNGReset(t *testing.T) {

	prng, err := NewKeyedPRNG([]byte("seed"))
	require.NoError(t, err)

	first := RandUint64(prng)
	prng.Reset()
	require.Equal(t, first, RandUint64(prng))
}

func TestRandFloat64Bounds(t *testing.T) {

	prng, err := NewKeyedPRNG(nil)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		f := RandFloat64(prng, -2.5, 7.5)
		require.GreaterOrEqual(t, f, -2.5)
		require.LessOrEqual(t, f, 7.5)
	}
}
