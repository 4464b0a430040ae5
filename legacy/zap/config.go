package zap

import (
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkipFrames = 1

// ErrInvalidConfig is returned by New when Config fails validation.
var ErrInvalidConfig = errors.New("invalid zap config")

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config contains the logger initialization inputs.
type Config struct {
	Environment Environment
	// Level overrides the environment's default level when set.
	Level string
	// OTelLibraryName names the instrumentation scope of the OpenTelemetry
	// log bridge. Leave empty to skip the bridge.
	OTelLibraryName string
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("%w: environment %q", ErrInvalidConfig, c.Environment)
	}
}

func (c Config) isDevelopment() bool {
	return c.Environment == EnvironmentDevelopment || c.Environment == EnvironmentLocal
}

// New creates a structured logger and returns it with its runtime-adjustable level.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if err := cfg.validate(); err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	baseConfig := buildConfig(cfg)
	baseConfig.Level = level
	baseConfig.DisableStacktrace = true

	options := []zap.Option{zap.AddCallerSkip(callerSkipFrames)}

	if name := strings.TrimSpace(cfg.OTelLibraryName); name != "" {
		options = append(options, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(name))
		}))
	}

	built, err := baseConfig.Build(options...)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, level, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(strings.TrimSpace(cfg.Level)); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("%w: level %q: %w", ErrInvalidConfig, cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if cfg.isDevelopment() {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func buildConfig(cfg Config) zap.Config {
	base := zap.NewProductionConfig()
	if cfg.isDevelopment() {
		base = zap.NewDevelopmentConfig()
	}

	base.Encoding = "json"
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return base
}
