package models

import "time"

// Tenant represents a renter tracked by the system
type Tenant struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	NationalID       string    `json:"nationalId"`
	Address          *string   `json:"address"`
	EmergencyContact *string   `json:"emergencyContact"`
	EmergencyPhone   *string   `json:"emergencyPhone"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CreateTenantParams is the insert shape for tenants (id and createdAt are
// assigned by the store)
type CreateTenantParams struct {
	Name             string  `json:"name" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required"`
	NationalID       string  `json:"nationalId" validate:"required"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	EmergencyPhone   *string `json:"emergencyPhone"`
}

// UpdateTenantParams is the partial update shape; nil fields are left unchanged
type UpdateTenantParams struct {
	Name             *string `json:"name"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone"`
	NationalID       *string `json:"nationalId"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	EmergencyPhone   *string `json:"emergencyPhone"`
}
