// Copyright (c) 2026 Marquee. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Handlers and services never inspect SQL errors directly; every storage
// error is classified here first.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/marquee-live/marquee/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrForeignKey is returned when an insert references a missing row or a
	// delete would leave dangling references (SQLSTATE 23503).
	ErrForeignKey = apperr.Conflict("The record is referenced by, or references, another record")

	// ErrDuplicate is returned on unique-constraint violations (SQLSTATE 23505).
	ErrDuplicate = apperr.Conflict("A record with the same value already exists")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the user while classifying the error type.
//
// The action label is carried on the internal error for log correlation.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations via Postgres SQLSTATE
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return ErrForeignKey
		case pgerrcode.UniqueViolation:
			return ErrDuplicate
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates the underlying error with the storage action that
// produced it, for server-side logs only.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }
func (e *actionError) Unwrap() error { return e.cause }
