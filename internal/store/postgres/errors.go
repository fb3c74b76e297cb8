package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlstateUniqueViolation = "23505"

	constraintProviderSlot = "appointments_provider_slot_active"
	constraintPartiesPkey  = "parties_pkey"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlstateUniqueViolation && pgErr.ConstraintName == constraint
}
