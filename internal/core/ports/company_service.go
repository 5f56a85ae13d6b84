package ports

import (
	"context"

	"github.com/companycatalog/catalog-api/internal/core/domain"
)

// RegisterCompanyInput is the payload for creating a company account.
type RegisterCompanyInput struct {
	CompanyName string
	Password    string
	Email       string
	Address     domain.Address
	Phone       []domain.Phone
	Role        string
}

// UpdateCompanyInput carries optional company mutations. A non-nil Password
// triggers a rehash of the stored secret.
type UpdateCompanyInput struct {
	Email    *string
	Address  *domain.Address
	Phone    *[]domain.Phone
	Password *string
}

// CompanyPage is one page of a company listing.
type CompanyPage struct {
	Companies   []domain.Company
	TotalPages  int64
	CurrentPage int64
}

type CompanyService interface {
	Register(ctx context.Context, input RegisterCompanyInput) (*domain.Company, error)
	Authenticate(ctx context.Context, companyName, password string) (string, error)
	List(ctx context.Context, filter CompanyFilter) (*CompanyPage, error)
	Get(ctx context.Context, companyName string) (*domain.Company, error)
	Update(ctx context.Context, companyName string, input UpdateCompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, companyName string) (*domain.Company, error)
}
