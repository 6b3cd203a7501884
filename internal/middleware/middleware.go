// Package middleware holds the global Echo middleware: request ids, the
// request-scoped logger, New Relic tracing, request logging, CORS, rate
// limiting, panic recovery and the global error handler.
package middleware
