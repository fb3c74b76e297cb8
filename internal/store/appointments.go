package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"appointly/backend/internal/domain"
)

type AppointmentStore interface {
	// InProviderTransaction runs fn in a transaction that holds the provider's
	// booking lock until commit. Bookings for the same provider are serialized.
	InProviderTransaction(ctx context.Context, providerID string, fn func(ctx context.Context, tx BookingTx) error) error

	FindByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	FindByProviderAndTimeRange(ctx context.Context, providerID string, start, end time.Time) ([]domain.Appointment, error)
	FindByRequester(ctx context.Context, requesterID string) ([]domain.Appointment, error)
	Update(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}

type BookingTx interface {
	ExistsForProviderAtTime(ctx context.Context, providerID string, at time.Time, excludeStatus domain.Status) (bool, error)
	Insert(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}
