package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/storage"
)

// DashboardHandlers handles the dashboard statistics endpoint
type DashboardHandlers struct {
	store storage.Storage
}

// NewDashboardHandlers creates a new dashboard handlers instance
func NewDashboardHandlers(store storage.Storage) *DashboardHandlers {
	return &DashboardHandlers{store: store}
}

// GetStats handles computing the dashboard numbers from current state
func (h *DashboardHandlers) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.DashboardStats())
}
