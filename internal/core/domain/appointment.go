package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrPastAppointment = errors.New("appointment date must be in the future")
var ErrInvalidStatus = errors.New("status must be PENDING, CONFIRMED or CANCELLED")

// IsValid reports whether s is one of the three enumerated statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a client booking for a salon service. Clients book without
// an account, so contact details live on the appointment itself.
//
// Overlapping bookings for the same slot are not prevented here or anywhere
// else in the backend; the frontend anticipates a conflict error that the
// server never produces.
type Appointment struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"clientName"`
	ClientEmail string            `json:"clientEmail"`
	ClientPhone string            `json:"clientPhone,omitempty"`
	StartAt     time.Time         `json:"startAt"`
	Status      AppointmentStatus `json:"status"`
}
