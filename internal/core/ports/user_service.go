package ports

import (
	"context"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// UpdateUserInput carries the mutable user fields. Nil pointers leave the
// stored value untouched.
type UpdateUserInput struct {
	Email    *string
	FullName *string
	Phone    *string
	Password *string
	IsActive *bool
}

// UserService defines the CRUD use-cases for the user entity. Authorization
// (admin-only listing, admin-or-self reads) is enforced in the API layer
// before any of these are invoked.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
