// Package log defines the logging interface and typed fields used across lib-legacy.
//
// Backends (such as the zap package) implement Logger; code that only needs to
// emit events depends on this package alone.
package log
