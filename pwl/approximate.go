package pwl

import (
	"fmt"
	"math"

	"github.com/dmitriikhurtin/openvino/utils"
)

// Approximate computes the minimum-length segment sequence fitting the
// activation within maxErr over [lower, upper], intersected with the
// activation's canonical domain. The call is pure and deterministic:
// identical inputs yield identical segments, and no partial result is
// ever returned alongside an error.
func Approximate(act Activation, lower, upper, maxErr float64) (Segments, error) {

	if !isFinite(lower) || !isFinite(upper) {
		return nil, fmt.Errorf("%w: non-finite bound", ErrInvalidDomain)
	}
	if lower > upper {
		return nil, fmt.Errorf("%w: lower bound %v above upper bound %v", ErrInvalidDomain, lower, upper)
	}
	if !(maxErr > 0) || math.IsInf(maxErr, 0) {
		return nil, fmt.Errorf("%w: error budget must be a positive finite value, got %v", ErrInvalidDomain, maxErr)
	}

	var segments Segments
	var err error

	switch act.Kind {
	case Identity:
		segments = identitySegments()
	case Power:
		segments, err = powerSearch(act, lower, upper, maxErr)
	default:
		var fn function
		if fn, err = kindFunction(act.Kind); err != nil {
			return nil, err
		}
		if lower, upper, err = clipDomain(&fn, lower, upper); err != nil {
			return nil, err
		}
		segments, _, err = pwlSearch(&fn, lower, upper, maxErr)
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", act.Kind, err)
	}

	if err = segments.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", act.Kind, err)
	}
	return segments, nil
}

// clipDomain intersects the requested bounds with the canonical domain
// of the function.
func clipDomain(fn *function, lower, upper float64) (float64, float64, error) {
	lower = utils.Max(lower, fn.lower)
	upper = utils.Min(upper, fn.upper)
	if lower > upper {
		return 0, 0, fmt.Errorf("%w: requested bounds do not intersect the canonical domain [%v, %v]", ErrInvalidDomain, fn.lower, fn.upper)
	}
	return lower, upper, nil
}
