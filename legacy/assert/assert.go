package assert

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-legacy/legacy/internal/nilcheck"
	"github.com/LerianStudio/lib-legacy/legacy/log"
	"github.com/LerianStudio/lib-legacy/legacy/runtime"
)

// AssertionSpanEventName is the span event added for a failed assertion.
const AssertionSpanEventName = "assertion.failed"

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// Logger is the subset of log.Logger the asserter needs.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Asserter evaluates invariants for one component/operation pair.
type Asserter struct {
	ctx       context.Context
	logger    Logger
	component string
	operation string
}

// AssertionError describes a failed assertion.
type AssertionError struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	if entry.Details == "" {
		return "assertion failed: " + entry.Message
	}

	return "assertion failed: " + entry.Message + "\n" + entry.Details
}

// Unwrap returns ErrAssertionFailed.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// New creates an Asserter. component and operation label every failure.
//
//nolint:contextcheck
func New(ctx context.Context, logger Logger, component, operation string) *Asserter {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Asserter{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// WithOperation returns a copy of the asserter labelled with operation.
func (asserter *Asserter) WithOperation(operation string) *Asserter {
	if asserter == nil {
		return New(context.Background(), nil, "", operation)
	}

	clone := *asserter
	clone.operation = operation

	return &clone
}

// That returns an error if ok is false.
//
// Example:
//
//	if err := asserter.That(ctx, n <= capacity-1, "copy overran capacity", "n", n); err != nil {
//		return err
//	}
func (asserter *Asserter) That(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return asserter.fail(ctx, "That", msg, kv...)
}

// Equal returns an error unless want and got are deeply equal. Both values are
// added to the failure details.
func (asserter *Asserter) Equal(ctx context.Context, want, got any, msg string, kv ...any) error {
	if reflect.DeepEqual(want, got) {
		return nil
	}

	pairs := make([]any, 0, len(kv)+4)
	pairs = append(pairs, "want", want, "got", got)
	pairs = append(pairs, kv...)

	return asserter.fail(ctx, "Equal", msg, pairs...)
}

// NotNil returns an error if v is nil, including a typed nil.
func (asserter *Asserter) NotNil(ctx context.Context, v any, msg string, kv ...any) error {
	if !nilcheck.Interface(v) {
		return nil
	}

	return asserter.fail(ctx, "NotNil", msg, kv...)
}

// NoError returns an error if err is not nil. The error text and type are added
// to the failure details.
func (asserter *Asserter) NoError(ctx context.Context, err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}

	pairs := make([]any, 0, len(kv)+4)
	pairs = append(pairs, "error", err.Error(), "error_type", fmt.Sprintf("%T", err))
	pairs = append(pairs, kv...)

	return asserter.fail(ctx, "NoError", msg, pairs...)
}

// Never always returns an error. Use it for unreachable paths.
func (asserter *Asserter) Never(ctx context.Context, msg string, kv ...any) error {
	return asserter.fail(ctx, "Never", msg, kv...)
}

const maxValueLength = 200

func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if b, ok := v.([]byte); ok {
		s = strconv.Quote(string(b))
	}

	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func (asserter *Asserter) fail(ctx context.Context, assertion, msg string, kv ...any) error {
	ctx, logger, component, operation := asserter.values(ctx)
	details := formatKeyValueLines(kv)

	var stack []byte
	if !runtime.IsProductionMode() {
		stack = debug.Stack()
	}

	logAssertion(ctx, logger, assertion, msg, details, component, operation)
	recordAssertionToSpan(ctx, assertion, msg, stack, component, operation)

	return &AssertionError{
		Assertion: assertion,
		Message:   msg,
		Component: component,
		Operation: operation,
		Details:   details,
	}
}

func (asserter *Asserter) values(ctx context.Context) (context.Context, Logger, string, string) {
	if asserter == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = asserter.ctx
	}

	return ctx, asserter.logger, asserter.component, asserter.operation
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any = "MISSING_VALUE"
		if i+1 < len(kv) {
			value = kv[i+1]
		}

		fmt.Fprintf(&sb, "    %v=%s", kv[i], truncateValue(value))
	}

	return sb.String()
}

func logAssertion(ctx context.Context, logger Logger, assertion, msg, details, component, operation string) {
	if logger == nil {
		return
	}

	fields := []log.Field{
		log.String("assertion", assertion),
		log.String("component", component),
		log.String("operation", operation),
	}

	if details != "" && !runtime.IsProductionMode() {
		fields = append(fields, log.String("details", details))
	}

	logger.Log(ctx, log.LevelError, "ASSERTION FAILED: "+msg, fields...)
}

func recordAssertionToSpan(ctx context.Context, assertion, message string, stack []byte, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.name", assertion),
		attribute.String("assertion.message", message),
	}

	if component != "" {
		attrs = append(attrs, attribute.String("assertion.component", component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String("assertion.operation", operation))
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String("assertion.stack", string(stack)))
	}

	span.AddEvent(AssertionSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrAssertionFailed, message))
	span.SetStatus(codes.Error, statusMessage(component, operation))
}

func statusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("assertion failed in %s/%s", component, operation)
	case component != "":
		return "assertion failed in " + component
	case operation != "":
		return "assertion failed in " + operation
	default:
		return "assertion failed"
	}
}
