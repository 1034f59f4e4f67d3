package mail

import (
	"strings"
	"testing"
	"time"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

func TestLangOrFallback(t *testing.T) {
	tests := []struct{ in, want string }{
		{"fr", "fr"},
		{"en", "en"},
		{"", "fr"},
		{"de", "fr"},
		{"EN", "fr"},
	}
	for _, tt := range tests {
		if got := langOrFallback(tt.in); got != tt.want {
			t.Fatalf("langOrFallback(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRendererWelcome(t *testing.T) {
	r := NewRenderer("http://localhost:5173")
	user := &domain.User{Email: "marie@example.com", FullName: "Marie Dubois"}

	subject, html, err := r.Welcome(user, "fr")
	if err != nil {
		t.Fatalf("Welcome returned error: %v", err)
	}
	if subject != "Bienvenue chez Nailyse" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(html, "Marie Dubois") {
		t.Fatalf("expected client name in body")
	}
	if !strings.Contains(html, "NAILYSE") {
		t.Fatalf("expected branded layout")
	}

	subject, html, err = r.Welcome(user, "en")
	if err != nil {
		t.Fatalf("Welcome returned error: %v", err)
	}
	if subject != "Welcome to Nailyse" {
		t.Fatalf("unexpected english subject: %q", subject)
	}
	if !strings.Contains(html, "Marie Dubois") {
		t.Fatalf("expected client name in english body")
	}
}

func TestRendererWelcome_FallbackToFrench(t *testing.T) {
	r := NewRenderer("http://localhost:5173")
	user := &domain.User{Email: "marie@example.com", FullName: "Marie"}

	subject, _, err := r.Welcome(user, "es")
	if err != nil {
		t.Fatalf("Welcome returned error: %v", err)
	}
	if subject != "Bienvenue chez Nailyse" {
		t.Fatalf("expected french fallback, got %q", subject)
	}
}

func TestRendererAppointmentConfirmation(t *testing.T) {
	r := NewRenderer("http://localhost:5173")
	appt := &domain.Appointment{
		ClientName:  "Marie Dubois",
		ClientEmail: "marie@example.com",
		StartAt:     time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC),
		Status:      domain.StatusPending,
	}

	subject, html, err := r.AppointmentConfirmation(appt, "fr")
	if err != nil {
		t.Fatalf("AppointmentConfirmation returned error: %v", err)
	}
	if subject != "Confirmation de votre rendez-vous - Nailyse" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(html, "15/03/2026 à 14h30") {
		t.Fatalf("expected french date format in body")
	}

	_, html, err = r.AppointmentConfirmation(appt, "en")
	if err != nil {
		t.Fatalf("AppointmentConfirmation returned error: %v", err)
	}
	if !strings.Contains(html, "Mar 15, 2026 at 2:30 PM") {
		t.Fatalf("expected english date format in body")
	}
}

func TestRendererOrderConfirmation(t *testing.T) {
	r := NewRenderer("http://localhost:5173")
	items := []ports.OrderItem{
		{Name: "Vernis Rouge Passion", Price: 12.90, Quantity: 2},
		{Name: "Kit Manucure", Price: 24.50, Quantity: 1},
	}

	subject, html, err := r.OrderConfirmation("Marie", items, 50.30, "fr")
	if err != nil {
		t.Fatalf("OrderConfirmation returned error: %v", err)
	}
	if subject != "Confirmation de votre commande - Nailyse" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(html, "Vernis Rouge Passion") {
		t.Fatalf("expected item name in body")
	}
	if !strings.Contains(html, "50.30") {
		t.Fatalf("expected total in body")
	}
}
