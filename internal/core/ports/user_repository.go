package ports

import (
	"context"

	"github.com/companycatalog/catalog-api/internal/core/domain"
)

// UserFilter narrows and pages a user listing.
type UserFilter struct {
	Role  string
	Page  int64
	Limit int64
}

// UserUpdate carries the mutable user fields. Nil means "leave untouched".
type UserUpdate struct {
	Name         *string
	Surname      *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Find(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
	Update(ctx context.Context, username string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, username string) (*domain.User, error)
}
