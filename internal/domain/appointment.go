package domain

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

var statusPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]{0,31}$`)

// ParseStatus trims and upper-cases a caller supplied label. The second
// return is false when the label is empty or not a valid status token.
func ParseStatus(label string) (Status, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if !statusPattern.MatchString(s) {
		return "", false
	}
	return Status(s), true
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid"`
	ProviderID  string     `bun:"provider_id,notnull"`
	RequesterID string     `bun:"requester_id,notnull"`
	ScheduledAt time.Time  `bun:"scheduled_at,notnull"`
	Status      Status     `bun:"status,notnull"`
	CancelledBy *string    `bun:"cancelled_by"`
	CancelledAt *time.Time `bun:"cancelled_at"`
	CreatedAt   time.Time  `bun:"created_at,notnull"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}
