package legacy

import (
	"github.com/LerianStudio/lib-legacy/legacy/cstr"
	"github.com/LerianStudio/lib-legacy/legacy/safe"
)

// BoundedStringCopy copies the NUL-terminated text of source into destination,
// writing at most capacity bytes including the terminator, and returns the
// number of text bytes copied.
//
// A nil destination or a capacity of zero writes nothing and returns 0. A nil
// source terminates destination at index 0 and returns 0. capacity is clamped
// to len(destination).
func BoundedStringCopy(destination []byte, capacity int, source []byte) int {
	return cstr.Copy(destination, capacity, source)
}

// SafeDivide returns the truncating quotient a / b, or 0 when b is zero.
// The unrepresentable quotient math.MinInt / -1 saturates to math.MaxInt.
func SafeDivide(a, b int) int {
	return safe.DivideIntOrZero(a, b)
}
