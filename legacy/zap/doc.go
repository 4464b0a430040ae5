// Package zap implements log.Logger on top of go.uber.org/zap.
//
// New builds a JSON logger whose baseline is chosen by Environment and whose
// level can be changed at runtime through the returned zap.AtomicLevel.
package zap
