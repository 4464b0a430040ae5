package runtime

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicSpanEventName is the span event added for a recovered panic.
const PanicSpanEventName = "panic.recovered"

// RecordPanicToSpan adds a panic event to the recording span in ctx and marks
// the span as failed. Without a recording span it does nothing.
func RecordPanicToSpan(ctx context.Context, recovered any, stack []byte, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("panic.component", component),
		attribute.String("panic.operation", operation),
	}

	if IsProductionMode() {
		attrs = append(attrs, attribute.String("panic.value", redactedPanicMsg))
	} else {
		attrs = append(attrs,
			attribute.String("panic.value", formatPanicValue(recovered)),
			attribute.String("panic.stack", truncateStack(stack)),
		)
	}

	span.AddEvent(PanicSpanEventName, trace.WithAttributes(attrs...))
	span.SetStatus(codes.Error, "panic recovered in "+component+"/"+operation)
}
