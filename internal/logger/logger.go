package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper over zap that keeps call sites free of zap
// imports; handlers and services only ever see this package.
type Logger struct {
	zl *zap.Logger
}

var global = &Logger{zl: zap.NewNop()}

// Init builds the global logger. level is a zap level string ("debug",
// "info", ...); asJSON switches between JSON and console encoding.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !asJSON {
		cfg.Encoding = "console"
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = &Logger{zl: zl}
	return nil
}

func L() *Logger { return global }

func With(fields ...Field) *Logger {
	return &Logger{zl: global.zl.With(fields...)}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, fields...)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, fields...)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, fields...)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, fields...)
}

func (l *Logger) Fatal(_ context.Context, msg string, fields ...Field) {
	l.zl.Fatal(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { global.Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { global.Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { global.Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { global.Error(ctx, msg, fields...) }
func Fatal(ctx context.Context, msg string, fields ...Field) { global.Fatal(ctx, msg, fields...) }

// Sync flushes buffered log entries; safe to call on shutdown.
func Sync() error { return global.zl.Sync() }
