// Package logger provides a process-global zap logger, matching the call
// convention (logger.Info/Warn/Error/Fatal with zap.Field options) used
// throughout shared/middleware and shared/errors.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log *zap.Logger
)

// Init builds the global logger at the given level ("debug", "info",
// "warn", "error"). Safe to call more than once; the last call wins.
func Init(level string) {
	zapLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn", "warning":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	cfg := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "json",
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	built, err := cfg.Build()
	if err != nil {
		built = zap.NewNop()
	}

	mu.Lock()
	log = built
	mu.Unlock()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func Debug(msg string, fields ...zap.Field) { get().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { get().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { get().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { get().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { get().Fatal(msg, fields...) }

// With returns a child logger with the given fields attached, for
// components (scrapers, worker) that want a long-lived annotated logger.
func With(fields ...zap.Field) *zap.Logger { return get().With(fields...) }

// Sync flushes any buffered log entries. Errors are expected and ignored
// when the output is a terminal/pipe that doesn't support fsync.
func Sync() {
	_ = get().Sync()
}
