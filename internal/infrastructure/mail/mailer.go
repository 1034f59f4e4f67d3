// Package mail implements the transactional mailer port over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/nailyse/salon-api/internal/api/metrics"
	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// Config captures the SMTP transport settings and the sender identity.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPMailer renders the HTML emails and delivers them over SMTP. There is
// no retry or queueing: a failed send is reported to the caller, who decides
// whether it matters.
type SMTPMailer struct {
	client   *gomail.Client
	renderer *Renderer
	cfg      Config
}

// NewSMTPMailer builds the SMTP client. Credentials are optional for
// unauthenticated relays (local development).
func NewSMTPMailer(cfg Config, renderer *Renderer) (*SMTPMailer, error) {
	opts := []gomail.Option{gomail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, renderer: renderer, cfg: cfg}, nil
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, user *domain.User, lang string) error {
	subject, html, err := m.renderer.Welcome(user, lang)
	if err != nil {
		return err
	}
	return m.send(ctx, "welcome", user.Email, subject, html)
}

func (m *SMTPMailer) SendAppointmentConfirmation(ctx context.Context, a *domain.Appointment, lang string) error {
	subject, html, err := m.renderer.AppointmentConfirmation(a, lang)
	if err != nil {
		return err
	}
	return m.send(ctx, "appointment", a.ClientEmail, subject, html)
}

func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, to, clientName string, items []ports.OrderItem, total float64, lang string) error {
	subject, html, err := m.renderer.OrderConfirmation(clientName, items, total, lang)
	if err != nil {
		return err
	}
	return m.send(ctx, "order", to, subject, html)
}

func (m *SMTPMailer) send(ctx context.Context, templateName, to, subject, html string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		metrics.EmailsSentTotal.WithLabelValues(templateName, "error").Inc()
		return fmt.Errorf("send %s email: %w", templateName, err)
	}
	metrics.EmailsSentTotal.WithLabelValues(templateName, "ok").Inc()
	return nil
}
