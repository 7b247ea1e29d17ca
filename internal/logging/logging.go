// Package logging builds the structured logger used across the crawler,
// configured from the resolved settings.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crawlkit/crawlkit/internal/config"
)

// New creates a production-ready structured logger configured for JSON output.
// The threshold comes from the configuration's log level; verbose logging
// lowers it to debug regardless of the configured level.
func New(cfg config.Config) (*zap.Logger, error) {
	level := zapLevel(cfg.LogLevel)
	if cfg.VerboseLog && level > zapcore.DebugLevel {
		level = zapcore.DebugLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = "json"
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.StacktraceKey = "stacktrace"
	zapCfg.DisableStacktrace = false

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func zapLevel(level config.LogLevel) zapcore.Level {
	switch level {
	case config.LevelDebug:
		return zapcore.DebugLevel
	case config.LevelWarning:
		return zapcore.WarnLevel
	case config.LevelError:
		return zapcore.ErrorLevel
	case config.LevelCritical:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
