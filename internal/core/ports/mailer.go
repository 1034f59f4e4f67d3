package ports

import (
	"context"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// Mailer sends the transactional emails of the application. Supported
// languages are "fr" and "en"; anything else falls back to French. No retry
// or queueing happens behind this interface; errors propagate to the caller.
type Mailer interface {
	SendWelcome(ctx context.Context, user *domain.User, lang string) error
	SendAppointmentConfirmation(ctx context.Context, a *domain.Appointment, lang string) error
	SendOrderConfirmation(ctx context.Context, to, clientName string, items []OrderItem, total float64, lang string) error
}
