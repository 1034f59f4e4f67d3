package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

const frontendURL = "http://localhost:5173"

func newPaymentService(provider ports.CheckoutProvider, mailer ports.Mailer, dedup ports.ConfirmDedup, mock bool) *PaymentService {
	return NewPaymentService(provider, mailer, dedup, mock, frontendURL, zerolog.Nop())
}

func cart() []ports.OrderItem {
	return []ports.OrderItem{
		{Name: "Vernis Rouge Passion", Price: 12.90, Quantity: 2},
		{Name: "Kit Manucure", Price: 24.50, Quantity: 1},
	}
}

func TestPaymentService_CreateSession_EmptyCart(t *testing.T) {
	provider := &stubProvider{}
	svc := newPaymentService(provider, &stubMailer{}, newStubDedup(), false)

	if _, err := svc.CreateSession(context.Background(), nil); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("provider must not be contacted for an empty cart")
	}
}

func TestPaymentService_CreateSession_Mock(t *testing.T) {
	provider := &stubProvider{}
	svc := newPaymentService(provider, &stubMailer{}, newStubDedup(), true)

	url, err := svc.CreateSession(context.Background(), cart())
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if !strings.HasPrefix(url, frontendURL+"/payment/success?session_id=mock_") {
		t.Fatalf("unexpected mock url: %s", url)
	}
	if provider.calls != 0 {
		t.Fatalf("provider must not be contacted in mock mode")
	}
}

func TestPaymentService_CreateSession_Live(t *testing.T) {
	provider := &stubProvider{url: "https://checkout.stripe.com/c/pay/cs_123"}
	svc := newPaymentService(provider, &stubMailer{}, newStubDedup(), false)

	url, err := svc.CreateSession(context.Background(), cart())
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if url != "https://checkout.stripe.com/c/pay/cs_123" {
		t.Fatalf("unexpected url: %s", url)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider call, got %d", provider.calls)
	}
}

func TestPaymentService_CreateSession_ProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("stripe unavailable")}
	svc := newPaymentService(provider, &stubMailer{}, newStubDedup(), false)

	if _, err := svc.CreateSession(context.Background(), cart()); err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestPaymentService_Confirm(t *testing.T) {
	mailer := &stubMailer{}
	dedup := newStubDedup()
	svc := newPaymentService(&stubProvider{}, mailer, dedup, false)

	msg, err := svc.Confirm(context.Background(), ports.ConfirmPaymentInput{
		SessionID:  "cs_123",
		Email:      "marie@example.com",
		ClientName: "Marie",
		Items:      cart(),
		Language:   "fr",
	})
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if msg != "Email de confirmation envoyé" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if len(mailer.orders) != 1 {
		t.Fatalf("expected one order email, got %d", len(mailer.orders))
	}
	sent := mailer.orders[0]
	if sent.to != "marie@example.com" || sent.name != "Marie" || sent.lang != "fr" {
		t.Fatalf("unexpected order email: %+v", sent)
	}
	// 2 x 12.90 + 1 x 24.50
	if math.Abs(sent.total-50.30) > 1e-9 {
		t.Fatalf("unexpected total: %v", sent.total)
	}
	if !dedup.seen["cs_123"] {
		t.Fatalf("expected session to be marked confirmed")
	}
}

func TestPaymentService_Confirm_EnglishMessage(t *testing.T) {
	svc := newPaymentService(&stubProvider{}, &stubMailer{}, newStubDedup(), false)

	msg, err := svc.Confirm(context.Background(), ports.ConfirmPaymentInput{
		Email:    "marie@example.com",
		Items:    cart(),
		Language: "en",
	})
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if msg != "Confirmation email sent" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestPaymentService_Confirm_MissingData(t *testing.T) {
	svc := newPaymentService(&stubProvider{}, &stubMailer{}, newStubDedup(), false)

	cases := []ports.ConfirmPaymentInput{
		{Items: cart()},
		{Email: "marie@example.com"},
	}
	for _, input := range cases {
		if _, err := svc.Confirm(context.Background(), input); !errors.Is(err, domain.ErrMissingPaymentData) {
			t.Fatalf("expected ErrMissingPaymentData for %+v, got %v", input, err)
		}
	}
}

func TestPaymentService_Confirm_DefaultQuantityAndName(t *testing.T) {
	mailer := &stubMailer{}
	svc := newPaymentService(&stubProvider{}, mailer, newStubDedup(), false)

	if _, err := svc.Confirm(context.Background(), ports.ConfirmPaymentInput{
		Email: "marie@example.com",
		Items: []ports.OrderItem{{Name: "Vernis", Price: 10, Quantity: 0}},
	}); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}

	sent := mailer.orders[0]
	if sent.total != 10 {
		t.Fatalf("zero quantity should count as one, total=%v", sent.total)
	}
	if sent.name != "Client" {
		t.Fatalf("expected fallback client name, got %q", sent.name)
	}
	if sent.lang != "fr" {
		t.Fatalf("expected fr fallback, got %q", sent.lang)
	}
}

func TestPaymentService_Confirm_Duplicate(t *testing.T) {
	mailer := &stubMailer{}
	dedup := newStubDedup()
	svc := newPaymentService(&stubProvider{}, mailer, dedup, false)

	input := ports.ConfirmPaymentInput{SessionID: "cs_dup", Email: "marie@example.com", Items: cart()}
	if _, err := svc.Confirm(context.Background(), input); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}

	msg, err := svc.Confirm(context.Background(), input)
	if err != nil {
		t.Fatalf("duplicate confirm failed: %v", err)
	}
	if msg == "" {
		t.Fatalf("duplicate confirm should still report success")
	}
	if len(mailer.orders) != 1 {
		t.Fatalf("duplicate confirm must not resend the email, got %d", len(mailer.orders))
	}
}

func TestPaymentService_Confirm_DedupFailureProceeds(t *testing.T) {
	mailer := &stubMailer{}
	dedup := newStubDedup()
	dedup.seenErr = errors.New("redis down")
	svc := newPaymentService(&stubProvider{}, mailer, dedup, false)

	if _, err := svc.Confirm(context.Background(), ports.ConfirmPaymentInput{
		SessionID: "cs_x", Email: "marie@example.com", Items: cart(),
	}); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if len(mailer.orders) != 1 {
		t.Fatalf("confirm should proceed when dedup is unavailable")
	}
}

func TestPaymentService_Confirm_MailFailure(t *testing.T) {
	mailer := &stubMailer{failWith: errors.New("smtp down")}
	dedup := newStubDedup()
	svc := newPaymentService(&stubProvider{}, mailer, dedup, false)

	if _, err := svc.Confirm(context.Background(), ports.ConfirmPaymentInput{
		SessionID: "cs_y", Email: "marie@example.com", Items: cart(),
	}); err == nil {
		t.Fatalf("expected mail error to propagate")
	}
	if dedup.seen["cs_y"] {
		t.Fatalf("failed confirm must not mark the session")
	}
}
