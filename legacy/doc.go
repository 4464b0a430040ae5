// Package legacy exposes the defensive routines that stand in for legacy native
// code in end-to-end verification runs.
//
// Both functions are total: every input, including a nil buffer, a zero
// capacity, a nil source or a zero divisor, yields a defined result. Anomalies
// are reported through the sentinel return value 0, never through errors or
// panics, so callers must treat the return value as self-describing.
//
//	buf := make([]byte, 16)
//	n := legacy.BoundedStringCopy(buf, len(buf), []byte(name))
//	q := legacy.SafeDivide(total, count)
//
// The subpackages cstr and safe hold the general helpers; verify checks the
// contracts end to end.
package legacy
