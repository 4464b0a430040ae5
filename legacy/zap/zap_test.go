//go:build unit

package zap

import (
	"context"
	"errors"
	"testing"

	logpkg "github.com/LerianStudio/lib-legacy/legacy/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, observed := observer.New(level)

	return NewWithCore(core), observed
}

func TestLoggerNilReceiverFallsBackToNop(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger

	assert.NotPanics(t, func() {
		nilLogger.Log(context.Background(), logpkg.LevelInfo, "message")
		_ = nilLogger.With(logpkg.String("k", "v"))
		_ = nilLogger.WithGroup("g")
	})
	assert.False(t, nilLogger.Enabled(logpkg.LevelError))
}

func TestLogDispatchesLevels(t *testing.T) {
	t.Parallel()

	logger, observed := newObservedLogger(zapcore.DebugLevel)
	ctx := context.Background()

	logger.Log(ctx, logpkg.LevelDebug, "debug")
	logger.Log(ctx, logpkg.LevelInfo, "info")
	logger.Log(ctx, logpkg.LevelWarn, "warn")
	logger.Log(ctx, logpkg.LevelError, "error")
	logger.Log(ctx, logpkg.Level(99), "unknown")

	entries := observed.AllUntimed()
	require.Len(t, entries, 5)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
}

func TestLogRespectsLevel(t *testing.T) {
	t.Parallel()

	logger, observed := newObservedLogger(zapcore.WarnLevel)

	logger.Log(context.Background(), logpkg.LevelInfo, "suppressed")
	logger.Log(context.Background(), logpkg.LevelError, "kept")

	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "kept", observed.All()[0].Message)
	assert.False(t, logger.Enabled(logpkg.LevelDebug))
	assert.True(t, logger.Enabled(logpkg.LevelError))
}

func TestLogConvertsFields(t *testing.T) {
	t.Parallel()

	logger, observed := newObservedLogger(zapcore.DebugLevel)
	boom := errors.New("boom")

	logger.Log(context.Background(), logpkg.LevelInfo, "fields",
		logpkg.String("suite", "copy"),
		logpkg.Int("capacity", 4),
		logpkg.Bool("passed", true),
		logpkg.Err(boom),
	)

	require.Equal(t, 1, observed.Len())

	ctxMap := observed.All()[0].ContextMap()
	assert.Equal(t, "copy", ctxMap["suite"])
	assert.EqualValues(t, 4, ctxMap["capacity"])
	assert.Equal(t, true, ctxMap["passed"])
	assert.Equal(t, "boom", ctxMap["error"])
}

func TestLogEscapesControlCharacters(t *testing.T) {
	t.Parallel()

	logger, observed := newObservedLogger(zapcore.DebugLevel)

	logger.Log(context.Background(), logpkg.LevelInfo, "line\nforged\tentry\r")

	require.Equal(t, 1, observed.Len())
	assert.Equal(t, `line\nforged\tentry\r`, observed.All()[0].Message)
}

func TestLogAddsTraceCorrelation(t *testing.T) {
	t.Parallel()

	logger, observed := newObservedLogger(zapcore.DebugLevel)

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	logger.Log(ctx, logpkg.LevelInfo, "traced")

	require.Equal(t, 1, observed.Len())

	ctxMap := observed.All()[0].ContextMap()
	assert.Equal(t, traceID.String(), ctxMap["trace_id"])
	assert.Equal(t, spanID.String(), ctxMap["span_id"])
}

func TestWithAndWithGroup(t *testing.T) {
	t.Parallel()

	logger, observed := newObservedLogger(zapcore.DebugLevel)

	child := logger.With(logpkg.String("component", "verify"))
	child.Log(context.Background(), logpkg.LevelInfo, "with")

	grouped := logger.WithGroup("report")
	grouped.Log(context.Background(), logpkg.LevelInfo, "grouped", logpkg.Int("failed", 0))

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "verify", entries[0].ContextMap()["component"])

	report, ok := entries[1].ContextMap()["report"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 0, report["failed"])
}

func TestSync(t *testing.T) {
	t.Parallel()

	logger, _ := newObservedLogger(zapcore.DebugLevel)

	assert.NoError(t, logger.Sync(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, logger.Sync(ctx), context.Canceled)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("invalid environment", func(t *testing.T) {
		t.Parallel()

		logger, _, err := New(Config{Environment: "moon"})

		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, logger)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, _, err := New(Config{Environment: EnvironmentProduction, Level: "loud"})

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("production defaults to info", func(t *testing.T) {
		t.Parallel()

		logger, level, err := New(Config{Environment: EnvironmentProduction})

		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.Equal(t, zapcore.InfoLevel, level.Level())
		assert.False(t, logger.Enabled(logpkg.LevelDebug))
	})

	t.Run("local defaults to debug", func(t *testing.T) {
		t.Parallel()

		logger, level, err := New(Config{Environment: EnvironmentLocal})

		require.NoError(t, err)
		assert.Equal(t, zapcore.DebugLevel, level.Level())
		assert.True(t, logger.Enabled(logpkg.LevelDebug))
	})

	t.Run("explicit level wins and is adjustable", func(t *testing.T) {
		t.Parallel()

		logger, level, err := New(Config{Environment: EnvironmentDevelopment, Level: "warn"})

		require.NoError(t, err)
		assert.False(t, logger.Enabled(logpkg.LevelInfo))

		level.SetLevel(zapcore.DebugLevel)
		assert.True(t, logger.Enabled(logpkg.LevelDebug))
	})

	t.Run("otel bridge", func(t *testing.T) {
		t.Parallel()

		logger, _, err := New(Config{Environment: EnvironmentStaging, OTelLibraryName: "lib-legacy"})

		require.NoError(t, err)
		assert.NotPanics(t, func() {
			logger.Log(context.Background(), logpkg.LevelInfo, "bridged")
		})
	})
}
