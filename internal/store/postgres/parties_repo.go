package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"appointly/backend/internal/domain"
	"appointly/backend/internal/store"
)

type PartyRepo struct {
	db *bun.DB
}

func NewPartyRepo(db *bun.DB) *PartyRepo {
	return &PartyRepo{db: db}
}

func (r *PartyRepo) Resolve(ctx context.Context, kind domain.PartyKind, id string) (domain.Party, error) {
	var p domain.Party
	err := r.db.NewSelect().
		Model(&p).
		Where("id = ?", id).
		Where("kind = ?", kind).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Party{}, store.ErrNotFound
		}
		return domain.Party{}, err
	}
	return p, nil
}

func (r *PartyRepo) Register(ctx context.Context, party domain.Party) (domain.Party, error) {
	m := party
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		if isUniqueViolation(err, constraintPartiesPkey) {
			return domain.Party{}, store.ErrConflict
		}
		return domain.Party{}, err
	}
	return m, nil
}
