package domain

import "time"

const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleCompany = "company"
)

// Variant identifies which principal namespace a natural key belongs to.
type Variant string

const (
	VariantUser    Variant = "user"
	VariantCompany Variant = "company"
)

// ValidUserRole reports whether role is permitted for the user variant.
func ValidUserRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User is a registered person identified by a unique lowercase username.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	Surname      string    `json:"surname,omitempty"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
