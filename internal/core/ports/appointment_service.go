package ports

import (
	"context"
	"time"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// CreateAppointmentInput carries the payload of a booking request.
type CreateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	StartAt     time.Time
	// Language selects the locale of the confirmation email. Defaults to "fr".
	Language string
}

// UpdateAppointmentInput carries the mutable appointment fields. Nil pointers
// leave the stored value untouched. Updates never trigger emails.
type UpdateAppointmentInput struct {
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	StartAt     *time.Time
	Status      *string
}

// AppointmentService defines the booking use-cases. Create runs the
// post-persist confirmation-email hook; the email is best effort and its
// failure never fails the booking.
type AppointmentService interface {
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	Update(ctx context.Context, id string, input UpdateAppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}
