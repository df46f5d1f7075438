package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment status values
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// Payment represents a rent installment on a contract. TenantID is
// denormalized from the contract for direct lookups.
type Payment struct {
	ID            int             `json:"id"`
	ContractID    int             `json:"contractId"`
	TenantID      int             `json:"tenantId"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	PaidDate      *time.Time      `json:"paidDate"`
	Status        string          `json:"status"`
	PaymentMethod *string         `json:"paymentMethod"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreatePaymentParams is the insert shape for payments. Status defaults to
// "pending" when omitted.
type CreatePaymentParams struct {
	ContractID    int             `json:"contractId" validate:"required"`
	TenantID      int             `json:"tenantId" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	DueDate       time.Time       `json:"dueDate" validate:"required"`
	PaidDate      *time.Time      `json:"paidDate"`
	Status        string          `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	PaymentMethod *string         `json:"paymentMethod"`
	Notes         *string         `json:"notes"`
}

// UpdatePaymentParams is the partial update shape; nil fields are left unchanged
type UpdatePaymentParams struct {
	ContractID    *int             `json:"contractId"`
	TenantID      *int             `json:"tenantId"`
	Amount        *decimal.Decimal `json:"amount"`
	DueDate       *time.Time       `json:"dueDate"`
	PaidDate      *time.Time       `json:"paidDate"`
	Status        *string          `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	PaymentMethod *string          `json:"paymentMethod"`
	Notes         *string          `json:"notes"`
}
