// Package logger builds configured slog loggers with automatic context
// attribute injection.
//
// Three output formats are supported: json for log aggregation, text for
// plain key=value output and pretty for colorized local development logs
// (via github.com/lmittmann/tint). Format and level usually arrive from the
// environment through Config; options cover the rest.
//
// # Usage
//
//	log := logger.NewFromConfig(cfg.Log,
//		logger.WithService("plankit"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			identity.LoggerExtractor(),
//		),
//	)
//
//	log.InfoContext(ctx, "plan created", logger.PlanID(id))
//
// Context extractors run on every log call, so records automatically carry
// request-scoped values such as the request ID or the caller identifier
// whenever the logging context holds them.
package logger
