package store

import (
	"context"

	"appointly/backend/internal/domain"
)

// PartyDirectory resolves party ids. A missing party, or one registered under
// a different kind, is reported as ErrNotFound.
type PartyDirectory interface {
	Resolve(ctx context.Context, kind domain.PartyKind, id string) (domain.Party, error)
}

type PartyRegistry interface {
	PartyDirectory
	Register(ctx context.Context, party domain.Party) (domain.Party, error)
}
