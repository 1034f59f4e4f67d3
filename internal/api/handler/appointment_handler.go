package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// AppointmentHandler exposes the booking endpoints. Creation is public so
// visitors can book without an account; everything else is admin-only.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	ClientName  string    `json:"clientName"  validate:"required,min=2,max=255"`
	ClientEmail string    `json:"clientEmail" validate:"required,email"`
	ClientPhone string    `json:"clientPhone" validate:"omitempty,phone,max=20"`
	StartAt     time.Time `json:"startAt"     validate:"required"`
	Language    string    `json:"language"    validate:"omitempty,oneof=fr en"`
}

type updateAppointmentRequest struct {
	ClientName  *string    `json:"clientName"  validate:"omitempty,min=2,max=255"`
	ClientEmail *string    `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone *string    `json:"clientPhone" validate:"omitempty,phone,max=20"`
	StartAt     *time.Time `json:"startAt"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
}

// Create handles POST /api/appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      createAppointmentRequest  true  "Booking details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  validationEnvelope
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationErrors
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationEnvelope{Error: "Validation échouée", Errors: ve.Fields})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		StartAt:     req.StartAt,
		Language:    req.Language,
	})
	if errors.Is(err, domain.ErrPastAppointment) {
		return c.JSON(http.StatusBadRequest, validationEnvelope{
			Error:  "Validation échouée",
			Errors: map[string]string{"startAt": "La date du rendez-vous doit être dans le futur."},
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appt)
}

// List handles GET /api/appointments (admin only).
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Appointment
// @Failure      403  {object}  errorResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if appts == nil {
		appts = []*domain.Appointment{}
	}
	return c.JSON(http.StatusOK, appts)
}

// Get handles GET /api/appointments/:id (admin only).
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	appt, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

// Update handles PATCH /api/appointments/:id (admin only).
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Appointment
// @Failure      400   {object}  validationEnvelope
// @Failure      404   {object}  errorResponse
// @Router       /api/appointments/{id} [patch]
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationErrors
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationEnvelope{Error: "Validation échouée", Errors: ve.Fields})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		StartAt:     req.StartAt,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

// Delete handles DELETE /api/appointments/:id (admin only).
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
