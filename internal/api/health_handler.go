package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CodeZF375/crimsonbot/internal/service"
)

type HealthHandler struct {
	svc service.HealthService
}

func NewHealthHandler(svc service.HealthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Livez はプロセスが応答できるかだけを見る。
func (h *HealthHandler) Livez(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// Readyz は ready フラグと DB 疎通の両方を見る。
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if !h.svc.Ready(ctx) {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
