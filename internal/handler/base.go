package handler

import (
	"reflect"
	"time"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is embedded by concrete handlers to reach shared dependencies.
type Handler struct {
	server *server.Server
}

// NewHandler returns the base Handler embedded by every endpoint group.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives a bound, validated request and
// returns the response body. Req is a pointer to a struct.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result and names the operation for logs.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a fixed status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// newRequest returns a zero value of the struct template points to, so every
// request binds into its own value.
func newRequest[Req validation.Validatable](template Req) Req {
	return reflect.New(reflect.TypeOf(template).Elem()).Interface().(Req)
}

// requestTrace reports the phases of one request to the request logger and,
// when present, the New Relic transaction.
type requestTrace struct {
	logger zerolog.Logger
	txn    *newrelic.Transaction
	start  time.Time
}

// phase records how a pipeline step ended. Failures are logged at error level
// and noticed on the transaction; successes only at debug.
func (t *requestTrace) phase(name string, started time.Time, err error) {
	elapsed := time.Since(started)

	status := "success"
	event := t.logger.Debug()
	if err != nil {
		status = "failed"
		event = t.logger.Error().Err(err)
	}
	event.Dur(name+"_duration", elapsed).Msgf("%s %s", name, status)

	if t.txn == nil {
		return
	}
	if err != nil {
		t.txn.NoticeError(nrpkgerrors.Wrap(err))
	}
	t.txn.AddAttribute(name+".status", status)
	t.txn.AddAttribute(name+".duration_ms", elapsed.Milliseconds())
}

func (t *requestTrace) done() {
	total := time.Since(t.start)
	if t.txn != nil {
		t.txn.AddAttribute("total.duration_ms", total.Milliseconds())
	}
	t.logger.Info().Dur("total_duration", total).Msg("request completed")
}

// handleRequest is the shared pipeline behind every typed endpoint: bind and
// validate, then run the handler, then write the response.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	route := c.Path()

	trace := &requestTrace{
		logger: middleware.GetLogger(c).With().
			Str("operation", responseHandler.GetOperation()).
			Str("method", c.Request().Method).
			Str("route", route).
			Logger(),
		txn:   newrelic.FromContext(c.Request().Context()),
		start: time.Now(),
	}
	if trace.txn != nil {
		trace.txn.AddAttribute("handler.name", route)
	}

	started := time.Now()
	err := validation.BindAndValidate(c, req)
	trace.phase("validation", started, err)
	if err != nil {
		return err
	}

	started = time.Now()
	result, err := handler(c, req)
	trace.phase("handler", started, err)
	if err != nil {
		return err
	}

	trace.done()
	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc. req only supplies
// the request type; each call binds into a fresh value.
//
//	g.POST("/users", handler.Handle(h.Handler, h.Register, http.StatusCreated, &RegisterRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
