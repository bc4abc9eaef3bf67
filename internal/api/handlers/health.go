// Package handlers implements HTTP handlers for the product-browser API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rohitwap/product-browser/internal/catalog"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	client catalog.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(client catalog.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the upstream catalog is reachable, 503 otherwise.
// Everything this service renders comes from the catalog, so there is no
// useful degraded mode to report.
func (h *HealthHandler) Readyz(c echo.Context) error {
	_, err := h.client.List(c.Request().Context(), catalog.ListRequest{Limit: 1})
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
