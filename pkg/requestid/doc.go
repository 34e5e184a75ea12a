// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a well formed incoming X-Request-ID header or generates a
// UUID, echoes the value on the response and stores it in the request context.
// LoggerExtractor plugs into logger.WithContextExtractors so that every record
// logged with the request context carries a request_id attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
//
// Client supplied identifiers longer than 128 bytes or containing characters
// other than letters, digits, dashes and underscores are replaced.
package requestid
