package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract links a tenant, a property and a landlord for a rental period.
// MonthlyRent and Deposit are snapshots taken at signing and may diverge from
// the property's current values.
type Contract struct {
	ID          int             `json:"id"`
	TenantID    int             `json:"tenantId"`
	PropertyID  int             `json:"propertyId"`
	LandlordID  int             `json:"landlordId"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	Deposit     decimal.Decimal `json:"deposit"`
	IsActive    bool            `json:"isActive"`
	Terms       *string         `json:"terms"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateContractParams is the insert shape for contracts. IsActive defaults
// to true when omitted.
type CreateContractParams struct {
	TenantID    int             `json:"tenantId" validate:"required"`
	PropertyID  int             `json:"propertyId" validate:"required"`
	LandlordID  int             `json:"landlordId" validate:"required"`
	StartDate   time.Time       `json:"startDate" validate:"required"`
	EndDate     time.Time       `json:"endDate" validate:"required"`
	MonthlyRent decimal.Decimal `json:"monthlyRent" validate:"required"`
	Deposit     decimal.Decimal `json:"deposit"`
	IsActive    *bool           `json:"isActive"`
	Terms       *string         `json:"terms"`
}

// UpdateContractParams is the partial update shape; nil fields are left unchanged
type UpdateContractParams struct {
	TenantID    *int             `json:"tenantId"`
	PropertyID  *int             `json:"propertyId"`
	LandlordID  *int             `json:"landlordId"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	MonthlyRent *decimal.Decimal `json:"monthlyRent"`
	Deposit     *decimal.Decimal `json:"deposit"`
	IsActive    *bool            `json:"isActive"`
	Terms       *string          `json:"terms"`
}
