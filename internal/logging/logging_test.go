package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/crawlkit/crawlkit/internal/config"
)

func TestNew(t *testing.T) {
	cfg, err := config.Resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled at the default level")
	}
	_ = logger.Sync()
}

func TestNewVerbose(t *testing.T) {
	cfg, err := config.Resolve(map[string]string{
		"crawlee_log_level":   "error",
		"crawlee_verbose_log": "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected verbose logging to enable debug output")
	}
	_ = logger.Sync()
}

func TestZapLevel(t *testing.T) {
	cases := []struct {
		level config.LogLevel
		want  zapcore.Level
	}{
		{config.LevelDebug, zapcore.DebugLevel},
		{config.LevelInfo, zapcore.InfoLevel},
		{config.LevelWarning, zapcore.WarnLevel},
		{config.LevelError, zapcore.ErrorLevel},
		{config.LevelCritical, zapcore.FatalLevel},
	}

	for _, tc := range cases {
		if got := zapLevel(tc.level); got != tc.want {
			t.Fatalf("zapLevel(%s) = %s, want %s", tc.level, got, tc.want)
		}
	}
}
