package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/lib/email"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIUIPath is the docs page, which loads static/openapi.json.
const OpenAPIUIPath = "static/openapi.html"

// OpenAPIHandler serves the API docs UI and, outside production, email
// template previews.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	templateBytes, err := os.ReadFile(OpenAPIUIPath)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

// PreviewEmail renders the :template email with its sample data.
func (h *OpenAPIHandler) PreviewEmail(c echo.Context) error {
	name := email.Template(c.Param("template"))

	data, ok := email.PreviewData[name]
	if !ok {
		return errs.NewNotFoundError(fmt.Sprintf("Unknown email template %q", name), true, nil)
	}

	html, err := email.Render(name, data)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTML(http.StatusOK, html)
}
