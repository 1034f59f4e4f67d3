package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailyse/salon-api/internal/api/metrics"
	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// AuthService implements registration, login and token authentication.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenManager
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenManager, mailer ports.Mailer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, mailer: mailer, logger: logger}
}

// Register creates an account, sends the welcome email (best effort) and
// issues a token so the caller is immediately logged in. The welcome email
// never fails the registration: the account is already persisted.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if input.Email == "" || input.FullName == "" || input.Password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        input.Email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Roles:        domain.NormalizeRoles(nil),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}
	metrics.RegistrationsTotal.Inc()

	if err := s.mailer.SendWelcome(ctx, created, input.Language); err != nil {
		s.logger.Warn().Err(err).Str("email", created.Email).Msg("welcome email failed")
	}

	token, err := s.tokens.Issue(created.Email)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created, token, nil
}

// Login verifies the email/password pair and returns a fresh token.
// Unknown accounts are reported as invalid credentials so the endpoint does
// not reveal which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, domain.ErrUserDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to an active user record.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.tokens.ParseEmail(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserDisabled
	}
	return user, nil
}
