// Package router builds the Echo instance: global middleware, system routes
// and the versioned API group.
package router

import (
	"net/http"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and New Relic transaction must exist
	// before the context enhancer builds the request logger.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h, s.Config.Primary.Env == "production")

	v1 := router.Group("/api/v1", middlewares.RateLimit.Limit())
	registerV1Routes(v1, h)

	return router
}

func registerV1Routes(g *echo.Group, h *handler.Handlers) {
	properties := g.Group("/properties")
	properties.GET("", handler.Handle(h.Properties.Handler, h.Properties.Search, http.StatusOK, &handler.SearchPropertiesRequest{}))
	properties.POST("", handler.Handle(h.Properties.Handler, h.Properties.Create, http.StatusCreated, &handler.CreatePropertyRequest{}))

	users := g.Group("/users")
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Register, http.StatusCreated, &handler.RegisterUserRequest{}))
	users.POST("/login", handler.Handle(h.Users.Handler, h.Users.Login, http.StatusOK, &handler.LoginRequest{}))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetByID, http.StatusOK, &handler.GetUserRequest{}))
	users.GET("/:id/reservations", handler.Handle(h.Reservations.Handler, h.Reservations.ListForGuest, http.StatusOK, &handler.ListReservationsRequest{}))
}
