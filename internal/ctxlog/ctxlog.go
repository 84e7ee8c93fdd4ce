// Package ctxlog carries a slog.Logger through context.Context so the
// cache and generation pipeline can log without threading a logger
// parameter everywhere.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this context key collision-free.
type key struct{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the logger carried by ctx, falling back to the
// process default logger when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(key{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
