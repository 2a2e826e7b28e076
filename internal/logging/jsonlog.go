package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = newLogger("info", false)
)

func newLogger(level string, development bool) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Setup replaces the process logger. Call once from main.
func Setup(level string, development bool) {
	Use(newLogger(level, development))
}

// Use installs l as the process logger (tests pass zap.NewNop or an observer).
func Use(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// L returns the current zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes buffered entries.
func Sync() { _ = L().Sync() }

func Log(level zapcore.Level, msg string, fields map[string]any) {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	if ce := L().Check(level, msg); ce != nil {
		ce.Write(zf...)
	}
}

func Debug(msg string, fields map[string]any) { Log(zapcore.DebugLevel, msg, fields) }
func Info(msg string, fields map[string]any)  { Log(zapcore.InfoLevel, msg, fields) }
func Warn(msg string, fields map[string]any)  { Log(zapcore.WarnLevel, msg, fields) }
func Error(msg string, fields map[string]any) { Log(zapcore.ErrorLevel, msg, fields) }
