package ports

import "context"

// OrderItem is one cart line as submitted by the frontend. Price is in major
// currency units (euros).
type OrderItem struct {
	Name     string
	Price    float64
	Quantity int
}

// CheckoutProvider creates a hosted checkout session with the external
// payment provider and returns its redirect URL.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, items []OrderItem) (string, error)
}

// ConfirmDedup guards the confirm endpoint against duplicate submissions for
// the same checkout session, so the order email is sent at most once.
type ConfirmDedup interface {
	Seen(ctx context.Context, sessionID string) (bool, error)
	Mark(ctx context.Context, sessionID string) error
}

// ConfirmPaymentInput carries the post-payment confirmation payload.
type ConfirmPaymentInput struct {
	SessionID  string
	Email      string
	ClientName string
	Items      []OrderItem
	Language   string
}

// PaymentService drives checkout-session creation and post-payment
// confirmation. Orders are never persisted; the only durable effect of a
// confirmation is the order email.
type PaymentService interface {
	CreateSession(ctx context.Context, items []OrderItem) (string, error)
	// Confirm recomputes the order total server-side, sends the confirmation
	// email and returns a message localized to the requested language.
	Confirm(ctx context.Context, input ConfirmPaymentInput) (string, error)
}
