package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// ErrConstraint reports a row rejected by a CHECK constraint.
var ErrConstraint = errors.New("constraint violation")

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr, PostgreSQL unique violations to
// duplicateErr, and check violations to ErrConstraint. Other errors are
// returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return duplicateErr
		case pgCheckViolation:
			return errors.Join(ErrConstraint, err)
		}
	}

	return err
}
