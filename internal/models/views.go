package models

import "github.com/shopspring/decimal"

// Composite views assembled at read time by following foreign-key ids across
// the collections. Rows with dangling references are omitted, never errored.

// PropertyWithDetails is a property joined with its landlord and, when an
// active contract exists, the contract's tenant and most recent payment.
type PropertyWithDetails struct {
	Property
	Landlord    Landlord `json:"landlord"`
	Tenant      *Tenant  `json:"tenant,omitempty"`
	LastPayment *Payment `json:"lastPayment,omitempty"`
}

// ContractWithDetails is a contract joined with all three referenced parties.
type ContractWithDetails struct {
	Contract
	Tenant   Tenant   `json:"tenant"`
	Property Property `json:"property"`
	Landlord Landlord `json:"landlord"`
}

// ContractWithProperty is a contract carrying its resolved property, used
// inside PaymentWithDetails.
type ContractWithProperty struct {
	Contract
	Property Property `json:"property"`
}

// PaymentWithDetails is a payment joined with its tenant and its contract
// (which embeds the contract's property).
type PaymentWithDetails struct {
	Payment
	Tenant   Tenant               `json:"tenant"`
	Contract ContractWithProperty `json:"contract"`
}

// DashboardStats are the four dashboard numbers, recomputed on every call.
type DashboardStats struct {
	TotalTenants     int             `json:"totalTenants"`
	ActiveProperties int             `json:"activeProperties"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	PendingPayments  int             `json:"pendingPayments"`
}
