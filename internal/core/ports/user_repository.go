package ports

import (
	"context"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// UserFilter carries the equality filters supported by the user listing.
type UserFilter struct {
	// ActiveOnly restricts the listing to enabled accounts.
	ActiveOnly bool
	// Role restricts the listing to users holding the given role.
	Role string
}

// UserRepository defines persistence operations for users. Email uniqueness
// is enforced at the storage layer (unique index), surfacing as ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
