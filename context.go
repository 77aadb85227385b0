package logfox

import "context"

type loggerKey struct{}

// NewContext returns a context carrying l.
func NewContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the Logger carried by ctx.
// If there is none, it returns the zero Logger, which logs to the [Default] State under the empty namespace.
func FromContext(ctx context.Context) Logger {
	l, _ := ctx.Value(loggerKey{}).(Logger)
	return l
}
