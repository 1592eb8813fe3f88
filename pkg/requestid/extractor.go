package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/inputcheck/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor that adds request_id.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
