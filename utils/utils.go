// Package utils implements generic helper functions shared across the module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// MaxSlice returns the maximum value of the input slice, or the zero
// value of T for an empty slice.
func MaxSlice[T constraints.Ordered](slice []T) (max T) {
	if len(slice) == 0 {
		return
	}
	max = slice[0]
	for i := range slice {
		max = Max(max, slice[i])
	}
	return
}

// EqualSlice checks the equality between two slices.
func EqualSlice[T comparable](a, b []T) (v bool) {
	if len(a) != len(b) {
		return false
	}
	v = true
	for i := range a {
		v = v && (a[i] == b[i])
	}
	return
}
