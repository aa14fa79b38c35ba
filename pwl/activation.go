package pwl

import (
	"fmt"
	"math"
)

// Kind identifies the activation family to approximate.
type Kind uint8

const (
	Sigmoid Kind = iota
	Tanh
	Exp
	Log
	SoftSign
	Power
	Identity
)

// String returns the lower-case name of the activation kind.
func (k Kind) String() string {
	switch k {
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case Exp:
		return "exp"
	case Log:
		return "log"
	case SoftSign:
		return "softsign"
	case Power:
		return "power"
	case Identity:
		return "identity"
	default:
		return "unknown"
	}
}

// Activation is a typed approximation request. For the Power kind the
// Exponent field carries the scalar constant operand in its original
// numeric type (any signed or unsigned integer width up to 64 bits, or
// any floating width); Scale and Shift describe the fused affine input
// transform (scale*x + shift)^p. The other kinds ignore these fields.
type Activation struct {
	Kind     Kind
	Exponent interface{}
	Scale    float64
	Shift    float64
}

// NewActivation returns an Activation of the given non-power kind.
func NewActivation(kind Kind) Activation {
	return Activation{Kind: kind}
}

// NewPower returns a power activation (x)^exponent. The exponent keeps
// its original numeric type and is validated during approximation.
func NewPower(exponent interface{}) Activation {
	return Activation{Kind: Power, Exponent: exponent, Scale: 1, Shift: 0}
}

// NewPowerAffine returns a fused power activation (scale*x + shift)^exponent.
func NewPowerAffine(exponent interface{}, scale, shift float64) Activation {
	return Activation{Kind: Power, Exponent: exponent, Scale: scale, Shift: shift}
}

// function bundles the analytic form of one activation together with
// its canonical domain, split point and search caps. The value and
// deriv closures must be numerically stable on the declared domain; no
// rounding beyond IEEE-754 double precision is applied.
type function struct {
	value func(x float64) float64
	deriv func(x float64) float64

	lower float64
	upper float64

	breakBound float64
	hasBreak   bool

	maxSegments   int
	maxIterations int

	// negative reports whether the sub-domain ending at upper is to be
	// searched as a negated problem. The pivot search then fits -f and
	// the caller restores the sign by flipping (m, b) on the result.
	negative func(upper float64) bool
}

// Canonical domain edges. The exponential domain covers the output
// range of a signed 16-bit accelerator; the logarithm domain matches
// the largest input the fixed-point pipeline produces.
var (
	expDomain = math.Log(32767)
	logLower  = math.Exp2(-15)
)

const logUpper = 2981.0

func never(float64) bool  { return false }
func always(float64) bool { return true }
func leftHalf(upper float64) bool {
	return upper == 0
}

// kindFunction returns the function bundle of a non-power kind. Power
// takes the dedicated path in powerSearch, and Identity is answered
// with the identity segments directly in Approximate.
func kindFunction(k Kind) (fn function, err error) {
	switch k {
	case Sigmoid:
		sigmoid := func(x float64) float64 { return 0.5 * (1.0 + math.Tanh(x/2.0)) }
		return function{
			value: sigmoid,
			deriv: func(x float64) float64 {
				y := sigmoid(x)
				return y * (1.0 - y)
			},
			lower: -10, upper: 10,
			breakBound: 0, hasBreak: true,
			maxSegments:   MaxSegments,
			maxIterations: MaxIterations,
			negative:      leftHalf,
		}, nil
	case Tanh:
		return function{
			value: math.Tanh,
			deriv: func(x float64) float64 {
				y := math.Tanh(x)
				return 1.0 - y*y
			},
			lower: -5, upper: 5,
			breakBound: 0, hasBreak: true,
			maxSegments:   MaxSegments,
			maxIterations: MaxIterations,
			negative:      leftHalf,
		}, nil
	case SoftSign:
		return function{
			value: func(x float64) float64 { return x / (1.0 + math.Abs(x)) },
			deriv: func(x float64) float64 {
				d := 1.0 + math.Abs(x)
				return 1.0 / (d * d)
			},
			lower: -10, upper: 10,
			breakBound: 0, hasBreak: true,
			maxSegments:   MaxSegments,
			maxIterations: MaxIterations,
			negative:      leftHalf,
		}, nil
	case Exp:
		return function{
			value: math.Exp,
			deriv: math.Exp,
			lower: -expDomain, upper: expDomain,
			breakBound: ExpBreak, hasBreak: true,
			maxSegments:   MaxSegments,
			maxIterations: MaxIterations,
			negative:      always,
		}, nil
	case Log:
		return function{
			value: math.Log,
			deriv: func(x float64) float64 { return 1.0 / x },
			lower: logLower, upper: logUpper,
			maxSegments:   MaxSegments,
			maxIterations: MaxIterationsLog,
			negative:      never,
		}, nil
	default:
		return function{}, fmt.Errorf("%w: no function table for kind %v", ErrUnsupportedType, k)
	}
}

// powerFunction returns the function bundle of (scale*x + shift)^p.
// The lower domain edge depends on the exponent: a fractional p is
// undefined on negative inputs, so the canonical domain starts at zero.
func powerFunction(p, scale, shift float64) function {
	integral := math.Mod(p, 1.0) == 0

	lower := -16.0
	if !integral {
		lower = 0.0
	}

	return function{
		value: func(x float64) float64 { return math.Pow(scale*x+shift, p) },
		deriv: func(x float64) float64 {
			return p * scale * math.Pow(scale*x+shift, p-1.0)
		},
		lower: lower, upper: 16,
		breakBound: 0, hasBreak: integral,
		maxSegments:   MaxSegments,
		maxIterations: MaxIterations,
		negative:      func(float64) bool { return integral },
	}
}
