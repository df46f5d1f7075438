package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property represents a rentable unit owned by a landlord. IsAvailable is a
// cached flag maintained by contract lifecycle events, not derived per read.
type Property struct {
	ID          int             `json:"id"`
	LandlordID  int             `json:"landlordId"`
	Address     string          `json:"address"`
	Type        string          `json:"type"` // unit layout code, e.g. "2+1"
	Area        int             `json:"area"`
	Floor       *int            `json:"floor"`
	HasBalcony  bool            `json:"hasBalcony"`
	HasParking  bool            `json:"hasParking"`
	IsAvailable bool            `json:"isAvailable"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	Deposit     decimal.Decimal `json:"deposit"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreatePropertyParams is the insert shape for properties. IsAvailable
// defaults to true when omitted.
type CreatePropertyParams struct {
	LandlordID  int             `json:"landlordId" validate:"required"`
	Address     string          `json:"address" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Area        int             `json:"area"`
	Floor       *int            `json:"floor"`
	HasBalcony  bool            `json:"hasBalcony"`
	HasParking  bool            `json:"hasParking"`
	IsAvailable *bool           `json:"isAvailable"`
	MonthlyRent decimal.Decimal `json:"monthlyRent" validate:"required"`
	Deposit     decimal.Decimal `json:"deposit"`
	Description *string         `json:"description"`
}

// UpdatePropertyParams is the partial update shape; nil fields are left unchanged
type UpdatePropertyParams struct {
	LandlordID  *int             `json:"landlordId"`
	Address     *string          `json:"address"`
	Type        *string          `json:"type"`
	Area        *int             `json:"area"`
	Floor       *int             `json:"floor"`
	HasBalcony  *bool            `json:"hasBalcony"`
	HasParking  *bool            `json:"hasParking"`
	IsAvailable *bool            `json:"isAvailable"`
	MonthlyRent *decimal.Decimal `json:"monthlyRent"`
	Deposit     *decimal.Decimal `json:"deposit"`
	Description *string          `json:"description"`
}
