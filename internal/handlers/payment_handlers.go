package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"

	"kiratakip/internal/models"
	"kiratakip/internal/storage"
)

// PaymentHandlers handles payment CRUD requests plus the pending/overdue
// filters and the rent receipt PDF
type PaymentHandlers struct {
	store storage.Storage
}

// NewPaymentHandlers creates a new payment handlers instance
func NewPaymentHandlers(store storage.Storage) *PaymentHandlers {
	return &PaymentHandlers{store: store}
}

// ListPayments handles getting all payments in the joined detail shape
func (h *PaymentHandlers) ListPayments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.PaymentsWithDetails())
}

// PendingPayments handles listing payments still outstanding, regardless of
// due date
func (h *PaymentHandlers) PendingPayments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.PendingPayments())
}

// OverduePayments handles listing outstanding payments whose due date has
// passed
func (h *PaymentHandlers) OverduePayments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.OverduePayments())
}

// GetPayment handles getting a payment by id
func (h *PaymentHandlers) GetPayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	payment, ok := h.store.GetPayment(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	return c.JSON(http.StatusOK, payment)
}

// CreatePayment handles creating a new payment
func (h *PaymentHandlers) CreatePayment(c echo.Context) error {
	var p models.CreatePaymentParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid payment data", err)
	}
	return c.JSON(http.StatusCreated, h.store.CreatePayment(p))
}

// UpdatePayment handles a partial payment update
func (h *PaymentHandlers) UpdatePayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var p models.UpdatePaymentParams
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&p); err != nil {
		return validationError(c, "Invalid payment data", err)
	}
	payment, ok := h.store.UpdatePayment(id, p)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	return c.JSON(http.StatusOK, payment)
}

// DeletePayment handles deleting a payment
func (h *PaymentHandlers) DeletePayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if !h.store.DeletePayment(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// PaymentReceipt handles generating a rent receipt PDF for a payment. All of
// the payment's references must resolve.
func (h *PaymentHandlers) PaymentReceipt(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	payment, ok := h.store.GetPayment(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	tenant, ok := h.store.GetTenant(payment.TenantID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	contract, ok := h.store.GetContract(payment.ContractID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	property, ok := h.store.GetProperty(contract.PropertyID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	}

	receipt, err := h.generateReceiptPDF(payment, tenant, property)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate receipt")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="receipt-%d.pdf"`, payment.ID))
	return c.Blob(http.StatusOK, "application/pdf", receipt)
}

// generateReceiptPDF renders a single-page rent receipt.
func (h *PaymentHandlers) generateReceiptPDF(payment models.Payment, tenant models.Tenant, property models.Property) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetXY(marginX, marginY)
	pdf.Cell(0, 10, "KIRATAKIP RENT RECEIPT")
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Receipt No: %d", payment.ID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Due Date: %s", payment.DueDate.Format("02-Jan-2006")))
	pdf.Ln(8)
	if payment.PaidDate != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Paid Date: %s", payment.PaidDate.Format("02-Jan-2006")))
		pdf.Ln(8)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", payment.Status))
	pdf.Ln(13)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "TENANT")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tenant.Name)
	pdf.Ln(6)
	pdf.Cell(0, 6, tenant.Email)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "PROPERTY")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, property.Address)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Amount: %s TL", payment.Amount.String()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
