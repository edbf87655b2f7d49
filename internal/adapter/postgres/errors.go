package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, kind domain.EntityKind, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", kind, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFound(kind, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", kind, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return domain.NewNotFound(kind, id)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", kind, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", kind, id, err)
}

// CheckVersion turns a zero-row versioned update into a ConflictError, or a
// NotFoundError when the row is gone entirely.
func CheckVersion(ctx context.Context, q Querier, table string, kind domain.EntityKind, id uuid.UUID, version int64, tag pgconn.CommandTag) error {
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&exists); err != nil {
		return MapError(err, kind, id)
	}
	if !exists {
		return domain.NewNotFound(kind, id)
	}
	return &domain.ConflictError{Kind: kind, ID: id, Version: version}
}
