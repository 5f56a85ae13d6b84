package domain

import "time"

// ValidCompanyRole reports whether role is permitted for the company variant.
func ValidCompanyRole(role string) bool {
	return role == RoleCompany || role == RoleAdmin
}

// Address is a company's physical location.
type Address struct {
	Area string `json:"area,omitempty"`
	Road string `json:"road,omitempty"`
}

// Phone is one of a company's contact numbers.
type Phone struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

// Company is a registered organisation identified by a unique company name.
// The name keeps its display casing; lookups and uniqueness are
// case-insensitive.
type Company struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"companyName"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Address      Address   `json:"address"`
	Phone        []Phone   `json:"phone,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
