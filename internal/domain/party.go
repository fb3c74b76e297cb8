package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type PartyKind string

const (
	PartyKindProvider  PartyKind = "provider"
	PartyKindRequester PartyKind = "requester"
)

func ParsePartyKind(s string) (PartyKind, bool) {
	switch PartyKind(strings.ToLower(strings.TrimSpace(s))) {
	case PartyKindProvider:
		return PartyKindProvider, true
	case PartyKindRequester:
		return PartyKindRequester, true
	default:
		return "", false
	}
}

type Party struct {
	bun.BaseModel `bun:"table:parties"`

	ID          string    `bun:"id,pk"`
	Kind        PartyKind `bun:"kind,notnull"`
	DisplayName string    `bun:"display_name,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
}

func (p *Party) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	if p.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		p.ID = id.String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return nil
}
