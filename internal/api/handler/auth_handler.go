package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// AuthHandler exposes the bespoke registration and login endpoints. Their
// response envelopes and French user-facing messages are part of the
// contract the frontend was built against.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and logs the caller in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      409   {object}  errorEnvelope
// @Failure      500   {object}  errorEnvelope
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope{
			Error:   "Données manquantes",
			Message: "Les champs email, fullName et password sont obligatoires.",
		})
	}

	if req.Email == "" || req.FullName == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorEnvelope{
			Error:   "Données manquantes",
			Message: "Les champs email, fullName et password sont obligatoires.",
		})
	}

	if err := c.Validate(&req); err != nil {
		var ve *ValidationErrors
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationEnvelope{
				Error:  "Validation échouée",
				Errors: ve.Fields,
			})
		}
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Validation échouée", Message: err.Error()})
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Password: req.Password,
		Language: req.Language,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorEnvelope{
				Error:   "Email déjà utilisé",
				Message: "Un compte existe déjà avec cet email.",
			})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{
			Error:   "Erreur serveur",
			Message: "Impossible de créer le compte. Veuillez réessayer.",
		})
	}

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "Compte créé avec succès",
		User:    toUserResponse(user),
		Token:   token,
	})
}

// Login authenticates an email/password pair and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorEnvelope
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, loginFailure(domain.ErrInvalidCredentials))
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, loginFailure(err))
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "Connexion réussie",
		User:    toUserResponse(user),
		Token:   token,
	})
}

func loginFailure(err error) errorEnvelope {
	msg := "Identifiants invalides. Veuillez réessayer."
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		msg = "Email ou mot de passe incorrect."
	case errors.Is(err, domain.ErrUserDisabled):
		msg = "Ce compte est désactivé."
	}
	return errorEnvelope{Error: "Échec de l'authentification", Message: msg}
}
