package models

import "time"

// Landlord represents a property owner
type Landlord struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	NationalID  string    `json:"nationalId"`
	Address     *string   `json:"address"`
	BankAccount *string   `json:"bankAccount"`
	TaxNumber   *string   `json:"taxNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateLandlordParams is the insert shape for landlords
type CreateLandlordParams struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required"`
	NationalID  string  `json:"nationalId" validate:"required"`
	Address     *string `json:"address"`
	BankAccount *string `json:"bankAccount"`
	TaxNumber   *string `json:"taxNumber"`
}

// UpdateLandlordParams is the partial update shape; nil fields are left unchanged
type UpdateLandlordParams struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	NationalID  *string `json:"nationalId"`
	Address     *string `json:"address"`
	BankAccount *string `json:"bankAccount"`
	TaxNumber   *string `json:"taxNumber"`
}
