package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/models"
	"kiratakip/internal/storage"
)

// TenantHandlers handles tenant CRUD requests
type TenantHandlers struct {
	store storage.Storage
}

// NewTenantHandlers creates a new tenant handlers instance
func NewTenantHandlers(store storage.Storage) *TenantHandlers {
	return &TenantHandlers{store: store}
}

// ListTenants handles getting all tenants
func (h *TenantHandlers) ListTenants(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListTenants())
}

// GetTenant handles getting a tenant by id
func (h *TenantHandlers) GetTenant(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	tenant, ok := h.store.GetTenant(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Tenant not found")
	}
	return c.JSON(http.StatusOK, tenant)
}

// CreateTenant handles creating a new tenant
func (h *TenantHandlers) CreateTenant(c echo.Context) error {
	var p models.CreateTenantParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid tenant data", err)
	}
	return c.JSON(http.StatusCreated, h.store.CreateTenant(p))
}

// UpdateTenant handles a partial tenant update
func (h *TenantHandlers) UpdateTenant(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var p models.UpdateTenantParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid tenant data", err)
	}
	tenant, ok := h.store.UpdateTenant(id, p)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Tenant not found")
	}
	return c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles deleting a tenant
func (h *TenantHandlers) DeleteTenant(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if !h.store.DeleteTenant(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Tenant not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID reads the :id route parameter.
func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id format")
	}
	return id, nil
}

// validationError responds with 400 and the raw validator detail.
func validationError(c echo.Context, message string, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"message": message,
		"errors":  err.Error(),
	})
}
