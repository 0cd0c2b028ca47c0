package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/firstrun/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.InstallMetadataStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store call at debug level, and failures at error level.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.InstallMetadataStore) ports.InstallMetadataStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) PromotionDialogCount(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := m.next.PromotionDialogCount(ctx)
	m.log(ctx, "promotion_dialog_count", start, count, err)
	return count, err
}

func (m *loggingMiddleware) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := m.next.RecordPromotionDialogShown(ctx)
	m.log(ctx, "record_promotion_dialog_shown", start, count, err)
	return count, err
}

func (m *loggingMiddleware) log(ctx context.Context, op string, start time.Time, count int, err error) {
	if err != nil {
		m.logger.ErrorContext(ctx, "store call failed", "op", op, "duration", time.Since(start), "error", err)
		return
	}
	m.logger.DebugContext(ctx, "store call", "op", op, "duration", time.Since(start), "count", count)
}
