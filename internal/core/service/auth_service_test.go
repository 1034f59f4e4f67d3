package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

func newAuthService(repo ports.UserRepository, mailer ports.Mailer) *AuthService {
	return NewAuthService(repo, NewTokenManager("secret", false), mailer, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	mailer := &stubMailer{}
	svc := newAuthService(repo, mailer)

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "alice@example.com",
		FullName: "Alice Martin",
		Password: "s3cretpass",
		Language: "en",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected persisted user, got %+v", user)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.PasswordHash == "s3cretpass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", user.Roles)
	}
	if !user.IsActive {
		t.Fatalf("expected new account to be active")
	}
	if len(mailer.welcomes) != 1 || mailer.welcomes[0] != "alice@example.com/en" {
		t.Fatalf("unexpected welcome emails: %v", mailer.welcomes)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubMailer{})

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@example.com"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubMailer{})

	input := ports.RegisterInput{Email: "bob@example.com", FullName: "Bob", Password: "password1"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_MailFailureStillSucceeds(t *testing.T) {
	mailer := &stubMailer{failWith: errors.New("smtp down")}
	svc := newAuthService(newStubUserRepo(), mailer)

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "carol@example.com",
		FullName: "Carol",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || token == "" {
		t.Fatalf("expected user and token despite mail failure")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubMailer{})

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "dora@example.com",
		FullName: "Dora",
		Password: "password1",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "dora@example.com", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil || user.Email != "dora@example.com" {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubMailer{})

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Email: "eve@example.com", FullName: "Eve", Password: "password1",
	})

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailNotRevealed(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubMailer{})

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubMailer{})

	user, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "frank@example.com", FullName: "Frank", Password: "password1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	stored := repo.users[user.ID]
	stored.IsActive = false

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "password1"); !errors.Is(err, domain.ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubMailer{})

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "gina@example.com", FullName: "Gina", Password: "password1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resolved, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if resolved.Email != user.Email {
		t.Fatalf("unexpected user: %+v", resolved)
	}

	if _, err := svc.Authenticate(context.Background(), "bogus"); err == nil {
		t.Fatalf("expected error for bogus token")
	}

	repo.users[user.ID].IsActive = false
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}
