// Package assert evaluates runtime invariants and reports violations.
//
// A failed assertion returns an *AssertionError (which unwraps to
// ErrAssertionFailed), logs the failure and records it on the span in the
// context. Assertions never panic.
package assert
