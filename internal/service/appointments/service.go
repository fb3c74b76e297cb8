package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"appointly/backend/internal/domain"
	"appointly/backend/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// NotFoundError names the missing provider, requester or appointment.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found: " + e.ID
}

func (e *NotFoundError) Unwrap() error {
	return store.ErrNotFound
}

type TransitionError struct {
	From domain.Status
	To   domain.Status
}

func (e *TransitionError) Error() string {
	return "cannot change status from " + string(e.From) + " to " + string(e.To)
}

type Service struct {
	repo    store.AppointmentStore
	parties store.PartyDirectory
	loc     *time.Location
	now     func() time.Time
}

type Option func(*Service)

// WithLocation sets the zone in which calendar days are cut. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo store.AppointmentStore, parties store.PartyDirectory, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		parties: parties,
		loc:     time.UTC,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type BookInput struct {
	ProviderID  string
	RequesterID string
	ScheduledAt time.Time
	// Status is optional; BOOKED when empty.
	Status string
}

func (s *Service) Book(ctx context.Context, in *BookInput) (domain.Appointment, error) {
	if in == nil {
		return domain.Appointment{}, validationError("appointment data is required")
	}
	providerID := strings.TrimSpace(in.ProviderID)
	if providerID == "" {
		return domain.Appointment{}, validationError("provider_id is required")
	}
	requesterID := strings.TrimSpace(in.RequesterID)
	if requesterID == "" {
		return domain.Appointment{}, validationError("requester_id is required")
	}
	if in.ScheduledAt.IsZero() {
		return domain.Appointment{}, validationError("scheduled_at is required")
	}

	status := domain.StatusBooked
	if strings.TrimSpace(in.Status) != "" {
		parsed, ok := domain.ParseStatus(in.Status)
		if !ok {
			return domain.Appointment{}, validationError("invalid status")
		}
		status = parsed
	}

	if err := s.resolve(ctx, domain.PartyKindProvider, providerID); err != nil {
		return domain.Appointment{}, err
	}
	if err := s.resolve(ctx, domain.PartyKindRequester, requesterID); err != nil {
		return domain.Appointment{}, err
	}

	appt := domain.Appointment{
		ProviderID:  providerID,
		RequesterID: requesterID,
		ScheduledAt: in.ScheduledAt,
		Status:      status,
	}

	var out domain.Appointment
	err := s.repo.InProviderTransaction(ctx, providerID, func(ctx context.Context, tx store.BookingTx) error {
		taken, err := tx.ExistsForProviderAtTime(ctx, providerID, appt.ScheduledAt, domain.StatusCancelled)
		if err != nil {
			return err
		}
		if taken {
			return store.ErrConflict
		}
		a, err := tx.Insert(ctx, appt)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func (s *Service) resolve(ctx context.Context, kind domain.PartyKind, id string) error {
	_, err := s.parties.Resolve(ctx, kind, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Resource: string(kind), ID: id}
	}
	return err
}

func (s *Service) ListForProviderOnDate(ctx context.Context, providerID string, date domain.Date) ([]domain.Appointment, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, validationError("provider_id is required")
	}
	if date.IsZero() {
		return nil, validationError("date is required")
	}

	start, end := date.Window(s.loc)
	return s.repo.FindByProviderAndTimeRange(ctx, providerID, start, end)
}

func (s *Service) ListForRequester(ctx context.Context, requesterID string) ([]domain.Appointment, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return nil, validationError("requester_id is required")
	}
	return s.repo.FindByRequester(ctx, requesterID)
}

// Cancel marks the appointment CANCELLED. Cancelling an already cancelled
// appointment returns it unchanged.
func (s *Service) Cancel(ctx context.Context, appointmentID uuid.UUID, cancelledBy string) (domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}

	appt, err := s.load(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, err
	}
	if appt.Status.IsCancelled() {
		return appt, nil
	}
	return s.cancel(ctx, appt, strings.TrimSpace(cancelledBy))
}

func (s *Service) cancel(ctx context.Context, appt domain.Appointment, cancelledBy string) (domain.Appointment, error) {
	now := s.now().UTC()
	appt.Status = domain.StatusCancelled
	appt.CancelledAt = &now
	appt.CancelledBy = nil
	if cancelledBy != "" {
		appt.CancelledBy = &cancelledBy
	}
	return s.repo.Update(ctx, appt)
}

// ChangeStatus overwrites the status without re-checking slot uniqueness.
// A cancelled appointment cannot be moved to another status.
func (s *Service) ChangeStatus(ctx context.Context, appointmentID uuid.UUID, label string) (domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	if strings.TrimSpace(label) == "" {
		return domain.Appointment{}, validationError("status is required")
	}
	status, ok := domain.ParseStatus(label)
	if !ok {
		return domain.Appointment{}, validationError("invalid status")
	}

	appt, err := s.load(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, err
	}

	if appt.Status.IsCancelled() {
		if status.IsCancelled() {
			return appt, nil
		}
		return domain.Appointment{}, &TransitionError{From: appt.Status, To: status}
	}
	if status.IsCancelled() {
		return s.cancel(ctx, appt, "")
	}

	appt.Status = status
	return s.repo.Update(ctx, appt)
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Appointment{}, &NotFoundError{Resource: "appointment", ID: id.String()}
	}
	return appt, err
}
