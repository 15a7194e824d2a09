// Package formula holds the error taxonomy and the guarded arithmetic used by
// the sizing calculators. IEEE division by zero yields an infinity in Go, so
// every denominator goes through Divide to surface it as an error instead.
package formula

import (
	"fmt"
	"math"
)

// Divide returns num/den, or ErrDivisionByZero when den is zero.
func Divide(num, den float64) (float64, error) {
	if den == 0 {
		return 0, ErrDivisionByZero
	}
	return num / den, nil
}

// Sqrt returns the square root of x, or ErrDomain when x is negative.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: square root of %g", ErrDomain, x)
	}
	return math.Sqrt(x), nil
}

// Trunc converts x to an int, truncating toward zero. Values that are not
// finite or do not fit into an int return ErrDomain.
func Trunc(x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: cannot convert %g to a count", ErrDomain, x)
	}
	t := math.Trunc(x)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, fmt.Errorf("%w: %g overflows a count", ErrDomain, x)
	}
	return int(t), nil
}

// Finite returns ErrDomain when x is NaN or an infinity, as happens when a
// result overflows float64.
func Finite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: result %g is not finite", ErrDomain, x)
	}
	return nil
}
