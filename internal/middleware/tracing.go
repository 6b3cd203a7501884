package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/lightbnb/internal/server"
)

// TracingMiddleware owns the New Relic Echo middleware. nrApp is nil when
// New Relic is disabled.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

// NewRelicMiddleware starts a transaction per request and stores it in the
// request context, or passes requests through when New Relic is disabled.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passthrough
	}
	return nrecho.Middleware(tm.nrApp)
}

// requestAttributes are recorded on every transaction before the handler runs.
func (tm *TracingMiddleware) requestAttributes(c echo.Context) map[string]any {
	attrs := map[string]any{
		"http.real_ip":        c.RealIP(),
		"http.user_agent":     c.Request().UserAgent(),
		"http.route":          c.Path(),
		"service.environment": tm.server.Config.Primary.Env,
	}
	if requestID := GetRequestID(c); requestID != "" {
		attrs["request.id"] = requestID
	}
	return attrs
}

// EnhanceTracing annotates the current transaction with request attributes,
// notices handler errors with their pkg/errors stack and records the status
// the error handler will respond with.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passthrough
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			for key, value := range tm.requestAttributes(c) {
				txn.AddAttribute(key, value)
			}

			err := next(c)

			status := c.Response().Status
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				status = toHTTPError(err).Status
			}
			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}
