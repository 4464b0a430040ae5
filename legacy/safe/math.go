package safe

import (
	"errors"
	"math"
	"unsafe"
)

// ErrDivisionByZero is returned when attempting to divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrOverflow is returned when the quotient does not fit the operand type.
// For two's-complement integers this only happens for MinOf[T]() / -1.
var ErrOverflow = errors.New("integer overflow")

// Signed is the set of signed integer types accepted by the division helpers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Signed]() T {
	var zero T

	return T(uint64(math.MaxUint64) >> (65 - unsafe.Sizeof(zero)*8))
}

// MinOf returns the smallest value representable by T.
func MinOf[T Signed]() T {
	return -MaxOf[T]() - 1
}

// overflows reports whether a / b cannot be represented in T.
func overflows[T Signed](a, b T) bool {
	return b == -1 && a == MinOf[T]()
}

// DivideInt performs truncating integer division with zero and overflow checks.
// Returns ErrDivisionByZero if b is zero and ErrOverflow for MinOf[T]() / -1.
//
// Example:
//
//	perPage, err := safe.DivideInt(total, pages)
//	if err != nil {
//	    return fmt.Errorf("split pages: %w", err)
//	}
func DivideInt[T Signed](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	if overflows(a, b) {
		return MaxOf[T](), ErrOverflow
	}

	return a / b, nil
}

// DivideIntOrZero performs truncating integer division, returning zero if b is
// zero. MinOf[T]() / -1 saturates to MaxOf[T]().
//
// Example:
//
//	avg := safe.DivideIntOrZero(sum, count)
func DivideIntOrZero[T Signed](a, b T) T {
	return DivideIntOrDefault(a, b, 0)
}

// DivideIntOrDefault performs truncating integer division, returning
// defaultValue if b is zero. MinOf[T]() / -1 saturates to MaxOf[T]().
//
// Example:
//
//	ratio := safe.DivideIntOrDefault(hits, total, -1)
func DivideIntOrDefault[T Signed](a, b, defaultValue T) T {
	if b == 0 {
		return defaultValue
	}

	if overflows(a, b) {
		return MaxOf[T]()
	}

	return a / b
}
