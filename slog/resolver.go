// Package slog provides logging decorators for namescan services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jarvis322/namescan"
)

// Ensure LoggingResolver implements namescan.IndexResolver.
var _ namescan.IndexResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps an IndexResolver with resolution logging.
type LoggingResolver struct {
	next   namescan.IndexResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next namescan.IndexResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context) ([]namescan.Document, namescan.IndexStatus) {
	begin := time.Now()
	docs, status := r.next.Resolve(ctx)
	r.log(ctx, "index resolution", docs, status, begin)
	return docs, status
}

// Refresh delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Refresh(ctx context.Context) ([]namescan.Document, namescan.IndexStatus) {
	begin := time.Now()
	docs, status := r.next.Refresh(ctx)
	r.log(ctx, "index refresh", docs, status, begin)
	return docs, status
}

func (r *LoggingResolver) log(ctx context.Context, msg string, docs []namescan.Document, status namescan.IndexStatus, begin time.Time) {
	r.logger.InfoContext(ctx, msg,
		"count", len(docs),
		"status", status.String(),
		"duration", time.Since(begin),
	)
}
