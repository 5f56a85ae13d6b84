package ports

import (
	"context"

	"github.com/companycatalog/catalog-api/internal/core/domain"
)

// CompanyFilter narrows and pages a company listing. Name matches company
// names case-insensitively as a substring pattern.
type CompanyFilter struct {
	Name  string
	Page  int64
	Limit int64
}

// CompanyUpdate carries the mutable company fields. Nil means "leave untouched".
type CompanyUpdate struct {
	Email        *string
	Address      *domain.Address
	Phone        *[]domain.Phone
	PasswordHash *string
}

// CompanyRepository defines the interface for company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByName(ctx context.Context, companyName string) (*domain.Company, error)
	Find(ctx context.Context, filter CompanyFilter) ([]domain.Company, int64, error)
	Update(ctx context.Context, companyName string, update CompanyUpdate) (*domain.Company, error)
	Delete(ctx context.Context, companyName string) (*domain.Company, error)
}
