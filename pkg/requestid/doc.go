// Package requestid correlates HTTP requests with their log records.
//
// Middleware reuses a client supplied X-Request-ID header when it is at
// most 128 characters of letters, digits, '-' and '_', and otherwise
// generates a UUIDv4. The id is stored in the request context, echoed in
// the response header and added to log records by LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
