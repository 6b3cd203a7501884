package router

import (
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers health, docs and static asset routes, plus
// email previews outside production.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, production bool) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if !production {
		r.GET("/dev/emails/:template", h.OpenAPI.PreviewEmail)
	}
}
