package handler

import (
	"time"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// errorEnvelope is the envelope of the bespoke endpoints' failures.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// errorResponse is the flat error shape shared by the resource endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// validationEnvelope carries one message per violated field.
type validationEnvelope struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Phone    string `json:"phone"    validate:"omitempty,phone,max=20"`
	Password string `json:"password" validate:"required,min=8"`
	Language string `json:"language" validate:"omitempty,oneof=fr en"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public view of a user. The password hash never leaves
// the domain struct (json:"-") and is additionally absent here.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	Roles     []string  `json:"roles"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Roles:     u.GetRoles(),
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}

type authResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *userResponse `json:"user"`
	Token   string        `json:"token"`
}
