package sdk

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Logger is the subset of *zap.SugaredLogger used by the governance packages.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
}

type contextLoggerValueT string

const ContextLoggerValue = contextLoggerValueT("governance-logger")

var defaultLogger = sync.OnceValue(func() Logger {
	return zap.Must(zap.NewProduction()).Named("governance").Sugar()
})

// LoggerFrom returns the logger stored in the context. Without one, all callers share a
// production zap logger named "governance".
func LoggerFrom(ctx context.Context) Logger {
	if logger, ok := ctx.Value(ContextLoggerValue).(Logger); ok && logger != nil {
		return logger
	}

	return defaultLogger()
}

// ContextWithLogger returns a copy of ctx carrying the logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ContextLoggerValue, logger)
}
