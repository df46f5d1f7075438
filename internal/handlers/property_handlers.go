package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/models"
	"kiratakip/internal/storage"
)

// PropertyHandlers handles property CRUD requests
type PropertyHandlers struct {
	store storage.Storage
}

// NewPropertyHandlers creates a new property handlers instance
func NewPropertyHandlers(store storage.Storage) *PropertyHandlers {
	return &PropertyHandlers{store: store}
}

// ListProperties handles getting all properties in the joined detail shape
func (h *PropertyHandlers) ListProperties(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.PropertiesWithDetails())
}

// GetProperty handles getting a property by id
func (h *PropertyHandlers) GetProperty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	property, ok := h.store.GetProperty(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Property not found")
	}
	return c.JSON(http.StatusOK, property)
}

// CreateProperty handles creating a new property
func (h *PropertyHandlers) CreateProperty(c echo.Context) error {
	var p models.CreatePropertyParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid property data", err)
	}
	return c.JSON(http.StatusCreated, h.store.CreateProperty(p))
}

// UpdateProperty handles a partial property update
func (h *PropertyHandlers) UpdateProperty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var p models.UpdatePropertyParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid property data", err)
	}
	property, ok := h.store.UpdateProperty(id, p)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Property not found")
	}
	return c.JSON(http.StatusOK, property)
}

// DeleteProperty handles deleting a property
func (h *PropertyHandlers) DeleteProperty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if !h.store.DeleteProperty(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Property not found")
	}
	return c.NoContent(http.StatusNoContent)
}
