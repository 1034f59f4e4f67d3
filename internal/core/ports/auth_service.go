package ports

import (
	"context"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// RegisterInput carries the payload of a registration request.
type RegisterInput struct {
	Email    string
	FullName string
	Phone    string
	Password string
	// Language selects the locale of the welcome email. Defaults to "fr".
	Language string
}

// AuthService implements registration, login and bearer-token authentication.
type AuthService interface {
	// Register creates the account and returns it together with a freshly
	// issued token so the new user is immediately logged in.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate resolves a bearer token to an active user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
