// Package errgroup runs goroutines that share a cancellation context.
//
// The first error, or the first recovered panic, cancels the group context and
// is returned by Wait.
package errgroup
