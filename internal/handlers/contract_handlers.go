package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/models"
	"kiratakip/internal/storage"
)

// ContractHandlers handles contract CRUD requests
type ContractHandlers struct {
	store storage.Storage
}

// NewContractHandlers creates a new contract handlers instance
func NewContractHandlers(store storage.Storage) *ContractHandlers {
	return &ContractHandlers{store: store}
}

// ListContracts handles getting all contracts in the joined detail shape
func (h *ContractHandlers) ListContracts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ContractsWithDetails())
}

// GetContract handles getting a contract by id
func (h *ContractHandlers) GetContract(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	contract, ok := h.store.GetContract(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Contract not found")
	}
	return c.JSON(http.StatusOK, contract)
}

// CreateContract handles creating a new contract. An active contract marks
// its property unavailable.
func (h *ContractHandlers) CreateContract(c echo.Context) error {
	var p models.CreateContractParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid contract data", err)
	}
	return c.JSON(http.StatusCreated, h.store.CreateContract(p))
}

// UpdateContract handles a partial contract update
func (h *ContractHandlers) UpdateContract(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var p models.UpdateContractParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid contract data", err)
	}
	contract, ok := h.store.UpdateContract(id, p)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Contract not found")
	}
	return c.JSON(http.StatusOK, contract)
}

// DeleteContract handles deleting a contract; the property is marked
// available again.
func (h *ContractHandlers) DeleteContract(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if !h.store.DeleteContract(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Contract not found")
	}
	return c.NoContent(http.StatusNoContent)
}
