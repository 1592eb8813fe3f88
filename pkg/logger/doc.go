// Package logger builds context-aware slog loggers from functional options.
//
// New selects a text or JSON handler, applies level and static attributes,
// and wraps the handler in LogHandlerDecorator so that registered
// ContextExtractor callbacks add request-scoped attributes (request id,
// prompt session) to every record logged with a context.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "inputcheckd"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "attempt rejected", logger.Attempt(2), logger.Mode("latin-title"))
//
// Attribute helpers in attr.go keep key names consistent. Helpers that take
// optional values return an empty slog.Attr, which slog drops, for nil input.
//
// Output defaults to JSON on stderr at INFO level. WithFormat panics on an
// unknown format so a misconfigured binary fails at startup.
package logger
