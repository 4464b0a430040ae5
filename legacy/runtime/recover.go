package runtime

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/LerianStudio/lib-legacy/legacy/log"
)

// ErrPanic is the sentinel every recovered panic error unwraps to.
var ErrPanic = errors.New("panic")

// HandlePanicValue processes a value already obtained from recover(): it logs
// it with a stack trace, records it on the span in ctx and forwards it to the
// configured ErrorReporter. A nil logger skips logging.
func HandlePanicValue(ctx context.Context, logger log.Logger, recovered any, component, operation string) {
	if ctx == nil {
		ctx = context.Background()
	}

	stack := debug.Stack()

	logPanicWithStack(ctx, logger, recovered, stack, component, operation)
	RecordPanicToSpan(ctx, recovered, stack, component, operation)
	reportPanicToErrorService(ctx, recovered, stack, component, operation)
}

// RecoverAndLogWithContext recovers a panic and handles it with
// HandlePanicValue. It must be called directly by defer.
//
// Example:
//
//	go func() {
//	    defer runtime.RecoverAndLogWithContext(ctx, logger, "verify", "divide-sweep")
//	    ...
//	}()
func RecoverAndLogWithContext(ctx context.Context, logger log.Logger, component, operation string) {
	if recovered := recover(); recovered != nil {
		HandlePanicValue(ctx, logger, recovered, component, operation)
	}
}

// Guard runs fn and converts a panic raised by it into a returned error that
// unwraps to ErrPanic. The panic is also handled like HandlePanicValue.
func Guard(ctx context.Context, logger log.Logger, component, operation string, fn func() error) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			HandlePanicValue(ctx, logger, recovered, component, operation)
			err = ToPanicError(recovered, IsProductionMode())
		}
	}()

	return fn()
}

func logPanicWithStack(ctx context.Context, logger log.Logger, recovered any, stack []byte, component, operation string) {
	if logger == nil {
		return
	}

	fields := []log.Field{
		log.String("component", component),
		log.String("operation", operation),
	}

	if IsProductionMode() {
		fields = append(fields, log.String("panic", redactedPanicMsg))
	} else {
		fields = append(fields,
			log.String("panic", formatPanicValue(recovered)),
			log.String("stack_trace", truncateStack(stack)),
		)
	}

	logger.Log(ctx, log.LevelError, "panic recovered", fields...)
}
