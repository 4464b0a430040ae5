package runtime

import (
	"context"
	"fmt"
	"sync"
)

// ErrorReporter forwards recovered panics to an external error tracking service.
//
// Implementations must be safe for concurrent use and must not panic.
type ErrorReporter interface {
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter configures the global error reporter. Pass nil to disable it.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the configured error reporter, or nil.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

var (
	productionMode   bool
	productionModeMu sync.RWMutex
)

const redactedPanicMsg = "panic recovered (details redacted)"

// maxStackLen bounds the stack trace attached to reports.
const maxStackLen = 4096

// SetProductionMode enables or disables redaction of panic details.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

func reportPanicToErrorService(ctx context.Context, panicValue any, stack []byte, component, operation string) {
	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	isProduction := IsProductionMode()

	tags := map[string]string{
		"component":  component,
		"operation":  operation,
		"panic_type": "recovered",
	}

	if len(stack) > 0 && !isProduction {
		tags["stack_trace"] = truncateStack(stack)
	}

	reporter.CaptureException(ctx, ToPanicError(panicValue, isProduction), tags)
}

func truncateStack(stack []byte) string {
	if len(stack) <= maxStackLen {
		return string(stack)
	}

	return string(stack[:maxStackLen]) + "\n...[truncated]"
}

// PanicError wraps a recovered panic value. It unwraps to ErrPanic and, when the
// panic value was itself an error, to that error.
type PanicError struct {
	Message string
	Cause   error
}

// Error returns the panic message.
func (e *PanicError) Error() string {
	return e.Message
}

// Unwrap exposes ErrPanic and the original error, if any.
func (e *PanicError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrPanic, e.Cause}
	}

	return []error{ErrPanic}
}

// ToPanicError converts a recovered value to a *PanicError. In production the
// message is replaced by a fixed redacted text and the cause is dropped.
func ToPanicError(panicValue any, isProduction bool) error {
	if isProduction {
		return &PanicError{Message: redactedPanicMsg}
	}

	if err, ok := panicValue.(error); ok {
		return &PanicError{Message: "panic: " + err.Error(), Cause: err}
	}

	return &PanicError{Message: "panic: " + formatPanicValue(panicValue)}
}

func formatPanicValue(value any) string {
	if value == nil {
		return "<nil>"
	}

	switch val := value.(type) {
	case string:
		return val
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", value)
	}
}
