package colloc

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch reports inconsistent or insufficient input
	// dimensions (tpoints length != data columns, fewer than two
	// samples, or an empty query grid).
	ErrShapeMismatch = errors.New("sample shape mismatch")

	// ErrUnordered reports sample timestamps that are not strictly
	// increasing.
	ErrUnordered = errors.New("tpoints must be strictly increasing")

	// ErrBandwidth reports a non-positive supplied bandwidth.
	ErrBandwidth = errors.New("bandwidth must be > 0")

	// ErrCapability reports storage without direct scalar element
	// access; the wrapping message names the offending argument.
	ErrCapability = errors.New("storage does not support direct element access")

	// ErrSingular reports a singular or near-singular weighted design
	// at some query point, typically a bandwidth too small relative to
	// the local sample spacing.
	ErrSingular = errors.New("singular local regression")
)

func validateShape(d, n, nt int) error {
	if d < 1 {
		return fmt.Errorf("need at least 1 channel, got %d: %w", d, ErrShapeMismatch)
	}

	if n < 2 {
		return fmt.Errorf("need at least 2 samples, got %d: %w", n, ErrShapeMismatch)
	}

	if nt != n {
		return fmt.Errorf("data is %d×%d but tpoints has %d entries: %w", d, n, nt, ErrShapeMismatch)
	}

	return nil
}

func validateOrdered(ts GridAccessor) error {
	for i := 1; i < ts.Len(); i++ {
		if ts.AtVec(i) <= ts.AtVec(i-1) {
			return fmt.Errorf("tpoints[%d]=%g is not above tpoints[%d]=%g: %w",
				i, ts.AtVec(i), i-1, ts.AtVec(i-1), ErrUnordered)
		}
	}

	return nil
}

// tableAccess asserts the element-access capability of a sample block,
// naming the argument on failure.
func tableAccess(arg string, t Table) (TableAccessor, error) {
	if acc, ok := t.(TableAccessor); ok {
		return acc, nil
	}

	return nil, fmt.Errorf("%s: %w", arg, ErrCapability)
}

// gridAccess asserts the element-access capability of a timestamp
// sequence, naming the argument on failure.
func gridAccess(arg string, g Grid) (GridAccessor, error) {
	if acc, ok := g.(GridAccessor); ok {
		return acc, nil
	}

	return nil, fmt.Errorf("%s: %w", arg, ErrCapability)
}
