package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"trainingboard/internal/apperr"
)

func TestUniqueViolationMapsDuplicateKey(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	err := uniqueViolation(dup, "a student with this email already exists")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "a student with this email already exists" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("insert student: %w", dup)
	if apperr.KindOf(uniqueViolation(wrapped, "duplicate email")) != apperr.KindConflict {
		t.Fatalf("wrapped duplicate-key error must still map to conflict")
	}
}

func TestUniqueViolationLeavesOtherErrorsUntouched(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	if err := uniqueViolation(fk, "duplicate"); !errors.Is(err, fk) {
		t.Fatalf("foreign-key error must pass through, got %v", err)
	}

	plain := errors.New("connection reset")
	if err := uniqueViolation(plain, "duplicate"); !errors.Is(err, plain) {
		t.Fatalf("plain error must pass through, got %v", err)
	}
	if apperr.KindOf(uniqueViolation(plain, "duplicate")) == apperr.KindConflict {
		t.Fatalf("plain error must not become a conflict")
	}
}
