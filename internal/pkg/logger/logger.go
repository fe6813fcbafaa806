package logger

import (
	"context"

	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction(zap.AddCallerSkip(1))).Sugar()

// Init replaces the global logger. Debug switches to the development
// config with human-readable output.
func Init(debug bool) {
	if debug {
		global = zap.Must(zap.NewDevelopment(zap.AddCallerSkip(1))).Sugar()
		return
	}
	global = zap.Must(zap.NewProduction(zap.AddCallerSkip(1))).Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = global.Sync()
}

// ctx is accepted by every helper so request-scoped fields can be
// attached later without touching call sites.

func Debugf(_ context.Context, format string, args ...any) {
	global.Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...any) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...any) {
	global.Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...any) {
	global.Errorf(format, args...)
}

func Error(_ context.Context, msg string) {
	global.Error(msg)
}

func Fatal(_ context.Context, err error) {
	global.Fatal(err)
}
