package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

var testClock = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newAppointmentService(repo ports.AppointmentRepository, mailer ports.Mailer) *AppointmentService {
	svc := NewAppointmentService(repo, mailer, zerolog.Nop())
	svc.now = func() time.Time { return testClock }
	return svc
}

func TestAppointmentService_Create(t *testing.T) {
	repo := newStubAppointmentRepo()
	mailer := &stubMailer{}
	svc := newAppointmentService(repo, mailer)

	appt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		ClientName:  "Marie Dubois",
		ClientEmail: "marie@example.com",
		StartAt:     testClock.Add(24 * time.Hour),
		Language:    "fr",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if appt.ID == "" {
		t.Fatalf("expected persisted appointment")
	}
	if appt.Status != domain.StatusPending {
		t.Fatalf("expected PENDING, got %s", appt.Status)
	}
	if len(mailer.appointments) != 1 || mailer.appointments[0] != "marie@example.com/fr" {
		t.Fatalf("unexpected confirmation emails: %v", mailer.appointments)
	}
}

func TestAppointmentService_Create_RejectsPast(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := newAppointmentService(repo, &stubMailer{})

	for _, startAt := range []time.Time{testClock.Add(-time.Hour), testClock} {
		_, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
			ClientName:  "Marie",
			ClientEmail: "marie@example.com",
			StartAt:     startAt,
		})
		if !errors.Is(err, domain.ErrPastAppointment) {
			t.Fatalf("expected ErrPastAppointment for %v, got %v", startAt, err)
		}
	}
	if len(repo.appointments) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestAppointmentService_Create_MailFailureStillSucceeds(t *testing.T) {
	repo := newStubAppointmentRepo()
	mailer := &stubMailer{failWith: errors.New("smtp down")}
	svc := newAppointmentService(repo, mailer)

	appt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		ClientName:  "Marie",
		ClientEmail: "marie@example.com",
		StartAt:     testClock.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if appt == nil || appt.Status != domain.StatusPending {
		t.Fatalf("expected created appointment despite mail failure, got %+v", appt)
	}
}

func TestAppointmentService_Create_NoEmailWhenPersistFails(t *testing.T) {
	repo := newStubAppointmentRepo()
	repo.createErr = errors.New("db down")
	mailer := &stubMailer{}
	svc := newAppointmentService(repo, mailer)

	if _, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		ClientName:  "Marie",
		ClientEmail: "marie@example.com",
		StartAt:     testClock.Add(time.Hour),
	}); err == nil {
		t.Fatalf("expected error")
	}
	if len(mailer.appointments) != 0 {
		t.Fatalf("no email expected when persistence fails")
	}
}

func TestAppointmentService_Update(t *testing.T) {
	repo := newStubAppointmentRepo()
	mailer := &stubMailer{}
	svc := newAppointmentService(repo, mailer)

	appt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		ClientName:  "Marie",
		ClientEmail: "marie@example.com",
		StartAt:     testClock.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := string(domain.StatusConfirmed)
	name := "Marie Dubois"
	updated, err := svc.Update(context.Background(), appt.ID, ports.UpdateAppointmentInput{
		ClientName: &name,
		Status:     &status,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.StatusConfirmed || updated.ClientName != "Marie Dubois" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.ClientEmail != "marie@example.com" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
	if len(mailer.appointments) != 1 {
		t.Fatalf("updates must not send email, got %v", mailer.appointments)
	}
}

func TestAppointmentService_Update_InvalidStatus(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := newAppointmentService(repo, &stubMailer{})

	appt, _ := svc.Create(context.Background(), ports.CreateAppointmentInput{
		ClientName:  "Marie",
		ClientEmail: "marie@example.com",
		StartAt:     testClock.Add(time.Hour),
	})

	bad := "DONE"
	if _, err := svc.Update(context.Background(), appt.ID, ports.UpdateAppointmentInput{Status: &bad}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestAppointmentService_Update_NotFound(t *testing.T) {
	svc := newAppointmentService(newStubAppointmentRepo(), &stubMailer{})

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateAppointmentInput{}); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
