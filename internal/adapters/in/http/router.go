package http

import (
	"log/slog"
	"net/http"

	"restaurant/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

// NewRouter assembles the echo instance: API routes, health check, metrics
// and the Swagger UI.
func NewRouter(server *Server, metrics *Metrics, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(e)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	if err := RegisterSwagger(e, BaseURL); err != nil {
		return nil, err
	}

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e, nil
}
