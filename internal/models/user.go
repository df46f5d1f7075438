package models

import "time"

// User is an application login account. Separate from Tenant/Landlord; email
// uniqueness is enforced here and only here.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserParams is the insert shape for users; Password is the already
// hashed credential.
type CreateUserParams struct {
	Name     string
	Email    string
	Password string
}
