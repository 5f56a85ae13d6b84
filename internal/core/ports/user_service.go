package ports

import (
	"context"

	"github.com/companycatalog/catalog-api/internal/core/domain"
)

// RegisterUserInput is the payload for creating a user account.
type RegisterUserInput struct {
	Username string
	Password string
	Name     string
	Surname  string
	Email    string
	Role     string
}

// UpdateUserInput carries optional user mutations. A non-nil Password
// triggers a rehash of the stored secret.
type UpdateUserInput struct {
	Name     *string
	Surname  *string
	Email    *string
	Password *string
}

// UserPage is one page of a user listing.
type UserPage struct {
	Users       []domain.User
	TotalPages  int64
	CurrentPage int64
}

type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	List(ctx context.Context, filter UserFilter) (*UserPage, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, username string) (*domain.User, error)
}
