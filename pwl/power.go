package pwl

import (
	"fmt"
	"math"
)

// floatsEqual compares two doubles within one unit of relative machine
// precision.
func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) <= 0x1p-52*math.Max(math.Abs(a), math.Abs(b))
}

// exponentValue extracts the power exponent from its typed scalar
// constant operand. Accepted types are the signed and unsigned integer
// widths up to 64 bits and both floating widths as plain scalars. A
// single-element slice is accepted for int32, int64, uint32, uint64,
// float32 and float64 only; slices of the other widths are rejected.
func exponentValue(constant interface{}) (float64, error) {
	switch v := constant.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case []int32:
		if len(v) != 1 {
			return 0, fmt.Errorf("%w: exponent constant has %d elements, need exactly 1", ErrUnsupportedType, len(v))
		}
		return float64(v[0]), nil
	case []int64:
		if len(v) != 1 {
			return 0, fmt.Errorf("%w: exponent constant has %d elements, need exactly 1", ErrUnsupportedType, len(v))
		}
		return float64(v[0]), nil
	case []uint32:
		if len(v) != 1 {
			return 0, fmt.Errorf("%w: exponent constant has %d elements, need exactly 1", ErrUnsupportedType, len(v))
		}
		return float64(v[0]), nil
	case []uint64:
		if len(v) != 1 {
			return 0, fmt.Errorf("%w: exponent constant has %d elements, need exactly 1", ErrUnsupportedType, len(v))
		}
		return float64(v[0]), nil
	case []float32:
		if len(v) != 1 {
			return 0, fmt.Errorf("%w: exponent constant has %d elements, need exactly 1", ErrUnsupportedType, len(v))
		}
		return float64(v[0]), nil
	case []float64:
		if len(v) != 1 {
			return 0, fmt.Errorf("%w: exponent constant has %d elements, need exactly 1", ErrUnsupportedType, len(v))
		}
		return v[0], nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, constant)
	}
}

// identitySegments is the degenerate two-segment sequence implementing
// y = x over the full signed 32-bit input range.
func identitySegments() Segments {
	return Segments{
		{Alpha: identityLower, M: 1, B: 0},
		{Alpha: identityUpper},
	}
}

// powerSearch is the dedicated path for (scale*x + shift)^p. An
// exponent of one short-circuits to the identity sequence; otherwise
// the generic pipeline runs on the power function with its p-derived
// domain clip.
func powerSearch(act Activation, lower, upper, maxErr float64) (Segments, error) {

	p, err := exponentValue(act.Exponent)
	if err != nil {
		return nil, err
	}

	if floatsEqual(p, 1.0) {
		return identitySegments(), nil
	}

	// A fractional exponent is undefined on negative inputs. The clip
	// policy for a caller domain reaching below zero is deliberately
	// not guessed here; the caller has to adjust the bounds.
	if math.Mod(p, 1.0) != 0 && lower < 0 {
		return nil, fmt.Errorf("%w: fractional exponent %v on lower bound %v", ErrInvalidDomain, p, lower)
	}

	fn := powerFunction(p, act.Scale, act.Shift)
	lower, upper, err = clipDomain(&fn, lower, upper)
	if err != nil {
		return nil, err
	}

	segments, _, err := pwlSearch(&fn, lower, upper, maxErr)
	return segments, err
}
