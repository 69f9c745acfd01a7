// Package pgerr classifies low-level Postgres failures into the application
// error taxonomy, so command handlers can retry contention and surface
// everything else.
package pgerr

import (
	"context"
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Classify wraps a storage error with its application kind: lock contention
// and serialization failures become Transient (retryable), unique violations
// become Conflict. Anything else passes through unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return errs.NewTransientErrorWithCause(op, err)
		case codeUniqueViolation:
			return errs.NewConflictErrorWithCause(op, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTransientErrorWithCause(op, err)
	}

	return err
}
