// Package safe provides panic-free integer division helpers.
//
// DivideInt reports a zero divisor or an unrepresentable quotient as an error.
// DivideIntOrZero and DivideIntOrDefault substitute a value instead, for callers
// that treat the result as self-describing. All helpers are generic over the
// signed integer widths.
package safe
