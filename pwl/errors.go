package pwl

import "errors"

var (
	// ErrInvalidDomain is returned when the requested bounds are not
	// finite, inverted, or incompatible with the activation (such as a
	// fractional power on a domain crossing zero).
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrDomain is returned when evaluating the activation or its
	// derivative produced a non-finite value inside the search domain.
	ErrDomain = errors.New("value out of range")

	// ErrUnsupportedType is returned when the exponent constant of a
	// power activation has an unsupported type or is not a scalar.
	ErrUnsupportedType = errors.New("unsupported exponent type")

	// ErrNotConverged is returned when the pivot search exhausts its
	// iteration cap without passing the completion test, or when the
	// segment search reaches the maximum segment count while the
	// audited error still exceeds the budget.
	ErrNotConverged = errors.New("failed to converge")
)
