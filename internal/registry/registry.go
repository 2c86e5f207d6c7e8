// Package registry owns the administrative records: students, teachers, courses
// and standards.
package registry

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"trainingboard/internal/apperr"
)

// Repository persists registry entities in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// noRows collapses sql.ErrNoRows so lookups can return (nil, nil) for missing records.
func noRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// uniqueViolation converts a Postgres unique-constraint error into a conflict with the
// given message, leaving other errors untouched.
func uniqueViolation(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperr.Conflict(msg)
	}
	return err
}
