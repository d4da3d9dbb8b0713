// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
//   - pgx.ErrNoRows → NotFound
//   - 23505 unique_violation → Conflict (the message names the constraint owner)
//   - 23502 / 23514 / 22001 → ValidationError with the constraint messages joined
//   - anything else → Internal
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
)

// Conflicts maps unique constraint names to client-facing conflict messages.
type Conflicts map[string]string

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Parameters
//   - err: the raw driver error
//   - resource: the entity name used for NotFound messages (e.g. "Topic")
//   - conflicts: known unique constraints and their messages; unknown ones get a generic message
func Wrap(err error, resource string, conflicts Conflicts) error {
	if err == nil {
		return nil
	}

	// Already classified upstream
	if apperr.As(err) != nil {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			message, ok := conflicts[pgErr.ConstraintName]
			if !ok {
				message = fmt.Sprintf("%s already exists", resource)
			}
			return apperr.Conflict(message).WithCause(err)

		case pgerrcode.NotNullViolation:
			return apperr.ConstraintViolation(fmt.Sprintf("%s is required", pgErr.ColumnName)).WithCause(err)

		case pgerrcode.CheckViolation, pgerrcode.StringDataRightTruncationDataException:
			return apperr.ConstraintViolation(pgErr.Message, pgErr.Detail).WithCause(err)
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
