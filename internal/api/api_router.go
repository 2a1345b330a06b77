package api

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CategoryRoutes is implemented by RecordHandler for every category type.
type CategoryRoutes interface {
	Register(g *echo.Group)
}

func SetupRoutes(
	e *echo.Echo,
	healthHandler *HealthHandler,
	statusHandler *StatusHandler,
	categories ...CategoryRoutes,
) {
	// ヘルスチェックとメトリクスは /api の外
	e.GET("/livez", healthHandler.Livez)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/status", statusHandler.Status)
	for _, c := range categories {
		c.Register(api)
	}
}
