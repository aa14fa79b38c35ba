// Package sampling implements deterministic generation of random bytes
// and bounded floats for reproducible randomized tests.
package sampling

import (
	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG is a deterministic pseudo-random byte stream backed by the
// blake2b extendable-output function. Two instances created with the
// same key produce the same sequence of bytes, which makes randomized
// tests reproducible from their seed alone.
// KeyedPRNG is not safe for concurrent use.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG seeded with the given key.
// A nil key is treated as an empty one.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	prng := &KeyedPRNG{key: make([]byte, len(key)), xof: xof}
	copy(prng.key, key)
	return prng, nil
}

// Key returns a copy of the key the stream was seeded with.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with the next bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
