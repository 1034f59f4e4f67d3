package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nailyse/salon-api/internal/api/metrics"
	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// AppointmentService implements the booking use-cases.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	mailer ports.Mailer
	logger zerolog.Logger
	// now is injected for tests; defaults to time.Now.
	now func() time.Time
}

func NewAppointmentService(repo ports.AppointmentRepository, mailer ports.Mailer, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, mailer: mailer, logger: logger, now: time.Now}
}

// Create persists a booking and then runs the confirmation-email hook.
// The email is sent only on creation, in the requested language, and its
// failure is logged and discarded: the appointment is already persisted and
// the caller still sees success.
//
// No conflict check against existing appointments at the same slot happens
// here; two clients can book the same time.
func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if !input.StartAt.After(s.now()) {
		return nil, domain.ErrPastAppointment
	}

	appointment := &domain.Appointment{
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		StartAt:     input.StartAt.UTC(),
		Status:      domain.StatusPending,
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}
	metrics.AppointmentsCreatedTotal.Inc()

	if err := s.mailer.SendAppointmentConfirmation(ctx, created, input.Language); err != nil {
		s.logger.Warn().Err(err).Str("appointment_id", created.ID).Msg("confirmation email failed")
	}

	s.logger.Info().
		Str("appointment_id", created.ID).
		Time("start_at", created.StartAt).
		Msg("appointment created")
	return created, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields. Updates never send email and do not
// re-validate StartAt against the clock: rescheduling history is the
// operator's concern, only creation enforces the future rule.
func (s *AppointmentService) Update(ctx context.Context, id string, input ports.UpdateAppointmentInput) (*domain.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClientName != nil {
		appointment.ClientName = *input.ClientName
	}
	if input.ClientEmail != nil {
		appointment.ClientEmail = *input.ClientEmail
	}
	if input.ClientPhone != nil {
		appointment.ClientPhone = *input.ClientPhone
	}
	if input.StartAt != nil {
		appointment.StartAt = input.StartAt.UTC()
	}
	if input.Status != nil {
		status := domain.AppointmentStatus(*input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		appointment.Status = status
	}

	return s.repo.Update(ctx, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
