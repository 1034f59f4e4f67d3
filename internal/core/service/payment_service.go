package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nailyse/salon-api/internal/api/metrics"
	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// PaymentService drives checkout-session creation and post-payment
// confirmation. No order is ever persisted: the confirmation's only durable
// effect is the order email, which is why duplicate confirms for the same
// session are suppressed through the dedup store.
type PaymentService struct {
	provider ports.CheckoutProvider
	mailer   ports.Mailer
	dedup    ports.ConfirmDedup
	logger   zerolog.Logger
	// mockMode short-circuits session creation with a fake redirect URL so
	// the frontend can be exercised without a real Stripe key.
	mockMode    bool
	frontendURL string
}

func NewPaymentService(provider ports.CheckoutProvider, mailer ports.Mailer, dedup ports.ConfirmDedup, mockMode bool, frontendURL string, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		provider:    provider,
		mailer:      mailer,
		dedup:       dedup,
		logger:      logger,
		mockMode:    mockMode,
		frontendURL: frontendURL,
	}
}

// CreateSession returns the redirect URL of a hosted checkout session for
// the given cart. Empty carts are rejected before the provider is contacted.
func (s *PaymentService) CreateSession(ctx context.Context, items []ports.OrderItem) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrEmptyCart
	}

	if s.mockMode {
		url := fmt.Sprintf("%s/payment/success?session_id=mock_%s", s.frontendURL, uuid.NewString())
		metrics.CheckoutSessionsTotal.WithLabelValues("mock").Inc()
		s.logger.Info().Int("items", len(items)).Msg("mock checkout session created")
		return url, nil
	}

	url, err := s.provider.CreateSession(ctx, items)
	if err != nil {
		s.logger.Error().Err(err).Msg("checkout session creation failed")
		return "", err
	}
	metrics.CheckoutSessionsTotal.WithLabelValues("live").Inc()
	return url, nil
}

// Confirm recomputes the total server-side and sends the order email in the
// requested language. A session already confirmed earlier reports success
// without resending. Returns the success message localized to lang.
func (s *PaymentService) Confirm(ctx context.Context, input ports.ConfirmPaymentInput) (string, error) {
	if input.Email == "" || len(input.Items) == 0 {
		return "", domain.ErrMissingPaymentData
	}

	lang := input.Language
	if lang == "" {
		lang = "fr"
	}
	clientName := input.ClientName
	if clientName == "" {
		clientName = "Client"
	}

	if input.SessionID != "" {
		seen, err := s.dedup.Seen(ctx, input.SessionID)
		if err != nil {
			// Dedup is a safety net, not a dependency: on Redis failure the
			// confirm proceeds and at worst a duplicate email goes out.
			s.logger.Warn().Err(err).Str("session_id", input.SessionID).Msg("confirm dedup check failed")
		} else if seen {
			metrics.PaymentConfirmsTotal.WithLabelValues("duplicate").Inc()
			s.logger.Info().Str("session_id", input.SessionID).Msg("duplicate payment confirm ignored")
			return confirmSuccessMessage(lang), nil
		}
	}

	var total float64
	for _, item := range input.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += item.Price * float64(qty)
	}

	if err := s.mailer.SendOrderConfirmation(ctx, input.Email, clientName, input.Items, total, lang); err != nil {
		metrics.PaymentConfirmsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	if input.SessionID != "" {
		if err := s.dedup.Mark(ctx, input.SessionID); err != nil {
			s.logger.Warn().Err(err).Str("session_id", input.SessionID).Msg("confirm dedup mark failed")
		}
	}

	metrics.PaymentConfirmsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("session_id", input.SessionID).Float64("total", total).Msg("order confirmed")
	return confirmSuccessMessage(lang), nil
}

func confirmSuccessMessage(lang string) string {
	if lang == "en" {
		return "Confirmation email sent"
	}
	return "Email de confirmation envoyé"
}

// ConfirmErrorMessage is the localized body of a failed confirmation.
func ConfirmErrorMessage(lang string) string {
	if lang == "en" {
		return "Error sending email"
	}
	return "Erreur lors de l'envoi de l'email"
}
