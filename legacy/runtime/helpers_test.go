//go:build unit

package runtime

import (
	"context"
	"sync"
	"testing"

	"github.com/LerianStudio/lib-legacy/legacy/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// testLogger captures log calls for assertions.
type testLogger struct {
	mu      sync.Mutex
	entries []testEntry
}

type testEntry struct {
	level  log.Level
	msg    string
	fields map[string]any
}

func (logger *testLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	values := make(map[string]any, len(fields))
	for _, f := range fields {
		values[f.Key] = f.Value
	}

	logger.entries = append(logger.entries, testEntry{level: level, msg: msg, fields: values})
}

//nolint:ireturn
func (logger *testLogger) With(_ ...log.Field) log.Logger { return logger }

//nolint:ireturn
func (logger *testLogger) WithGroup(_ string) log.Logger { return logger }

func (logger *testLogger) Enabled(_ log.Level) bool { return true }

func (logger *testLogger) Sync(_ context.Context) error { return nil }

func (logger *testLogger) snapshot() []testEntry {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	return append([]testEntry(nil), logger.entries...)
}

type capturedReport struct {
	err  error
	tags map[string]string
}

type testReporter struct {
	mu      sync.Mutex
	reports []capturedReport
}

func (r *testReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, capturedReport{err: err, tags: tags})
}

func newTestTracerProvider(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	return provider, recorder
}

// withProductionMode sets production mode for the duration of a test.
// Tests using it must not run in parallel.
func withProductionMode(t *testing.T, enabled bool) {
	t.Helper()

	previous := IsProductionMode()
	SetProductionMode(enabled)

	t.Cleanup(func() { SetProductionMode(previous) })
}

// withErrorReporter installs reporter for the duration of a test.
// Tests using it must not run in parallel.
func withErrorReporter(t *testing.T, reporter ErrorReporter) {
	t.Helper()

	previous := GetErrorReporter()
	SetErrorReporter(reporter)

	t.Cleanup(func() { SetErrorReporter(previous) })
}
