package common

import "github.com/go-playground/validator/v10"

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the shared request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct-level validate tags.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
