package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/models"
	"kiratakip/internal/storage"
)

// LandlordHandlers handles landlord CRUD requests
type LandlordHandlers struct {
	store storage.Storage
}

// NewLandlordHandlers creates a new landlord handlers instance
func NewLandlordHandlers(store storage.Storage) *LandlordHandlers {
	return &LandlordHandlers{store: store}
}

// ListLandlords handles getting all landlords
func (h *LandlordHandlers) ListLandlords(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListLandlords())
}

// GetLandlord handles getting a landlord by id
func (h *LandlordHandlers) GetLandlord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	landlord, ok := h.store.GetLandlord(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Landlord not found")
	}
	return c.JSON(http.StatusOK, landlord)
}

// CreateLandlord handles creating a new landlord
func (h *LandlordHandlers) CreateLandlord(c echo.Context) error {
	var p models.CreateLandlordParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid landlord data", err)
	}
	return c.JSON(http.StatusCreated, h.store.CreateLandlord(p))
}

// UpdateLandlord handles a partial landlord update
func (h *LandlordHandlers) UpdateLandlord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var p models.UpdateLandlordParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid landlord data", err)
	}
	landlord, ok := h.store.UpdateLandlord(id, p)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Landlord not found")
	}
	return c.JSON(http.StatusOK, landlord)
}

// DeleteLandlord handles deleting a landlord. Properties referencing the
// landlord are left as-is and silently drop out of the joined views.
func (h *LandlordHandlers) DeleteLandlord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if !h.store.DeleteLandlord(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Landlord not found")
	}
	return c.NoContent(http.StatusNoContent)
}
