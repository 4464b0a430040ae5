// Package runtime recovers and reports panics raised by goroutines and
// verification checks.
//
// Recovered panics are logged with a stack trace, recorded as an event on the
// active span, and forwarded to the optional ErrorReporter. Production mode
// redacts stack traces and panic values from all three.
package runtime
