package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// stubMailer records outgoing emails and can be forced to fail.
type stubMailer struct {
	failWith error

	welcomes     []string
	appointments []string
	orders       []sentOrder
}

type sentOrder struct {
	to    string
	name  string
	total float64
	lang  string
	items []ports.OrderItem
}

func (m *stubMailer) SendWelcome(_ context.Context, user *domain.User, lang string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.welcomes = append(m.welcomes, user.Email+"/"+lang)
	return nil
}

func (m *stubMailer) SendAppointmentConfirmation(_ context.Context, a *domain.Appointment, lang string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.appointments = append(m.appointments, a.ClientEmail+"/"+lang)
	return nil
}

func (m *stubMailer) SendOrderConfirmation(_ context.Context, to, clientName string, items []ports.OrderItem, total float64, lang string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.orders = append(m.orders, sentOrder{to: to, name: clientName, total: total, lang: lang, items: items})
	return nil
}

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = strconv.Itoa(r.nextID)
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.ActiveOnly && !u.IsActive {
			continue
		}
		if filter.Role != "" {
			found := false
			for _, role := range u.Roles {
				if role == filter.Role {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubAppointmentRepo is an in-memory ports.AppointmentRepository.
type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	nextID       int
	createErr    error
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	copy := *a
	copy.ID = strconv.Itoa(r.nextID)
	r.appointments[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) List(_ context.Context) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appointments {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := r.appointments[a.ID]; !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	copy := *a
	r.appointments[a.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

// stubProvider is a recording ports.CheckoutProvider.
type stubProvider struct {
	url   string
	err   error
	calls int
}

func (p *stubProvider) CreateSession(_ context.Context, items []ports.OrderItem) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	if p.url != "" {
		return p.url, nil
	}
	return fmt.Sprintf("https://checkout.example.com/s/%d", p.calls), nil
}

// stubDedup is an in-memory ports.ConfirmDedup.
type stubDedup struct {
	seen    map[string]bool
	seenErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) Seen(_ context.Context, sessionID string) (bool, error) {
	if d.seenErr != nil {
		return false, d.seenErr
	}
	return d.seen[sessionID], nil
}

func (d *stubDedup) Mark(_ context.Context, sessionID string) error {
	d.seen[sessionID] = true
	return nil
}
