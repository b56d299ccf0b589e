// Package apperrors defines the error taxonomy surfaced by the store
// and service layers: validation failures, database constraint
// violations, missing rows and infrastructure outages.
package apperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ValidationError carries one human-readable reason per failing field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NewValidation builds a single-field validation error.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError reports a missing row by resource name and id.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// ConstraintKind classifies database constraint violations.
type ConstraintKind int

const (
	ConstraintOther ConstraintKind = iota
	ConstraintNotNull
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
)

// ConstraintError is a constraint violation caught at flush time,
// identifying the offending column or uniqueness group where the
// driver exposes it.
type ConstraintError struct {
	Kind       ConstraintKind
	Column     string
	Constraint string
	Cause      error
}

func (e *ConstraintError) Error() string { return e.Message() }

func (e *ConstraintError) Unwrap() error { return e.Cause }

// Name returns the error kind label used in response bodies.
func (e *ConstraintError) Name() string {
	switch e.Kind {
	case ConstraintNotNull:
		return "Required field missing"
	case ConstraintUnique:
		return "Duplicate value"
	case ConstraintForeignKey:
		return "Invalid Relationship"
	default:
		return "Database Integrity Error"
	}
}

// Message describes the violation, referencing the offending column
// or uniqueness group when known.
func (e *ConstraintError) Message() string {
	switch e.Kind {
	case ConstraintNotNull:
		if e.Column != "" {
			return fmt.Sprintf("%s cannot be null", e.Column)
		}
		return "a required column is null"
	case ConstraintUnique:
		if e.Constraint != "" {
			return fmt.Sprintf("%s must be unique", strings.TrimSuffix(e.Constraint, "_key"))
		}
		return "value must be unique"
	case ConstraintForeignKey:
		if e.Column != "" {
			return fmt.Sprintf("instance referenced by %s doesn't exist", e.Column)
		}
		return "a referenced instance doesn't exist or is still referenced"
	default:
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return "database integrity error"
	}
}

// UnavailableError marks infrastructure-level database failures that
// the caller may retry as a whole request.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("database unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// Postgres error codes for constraint violation classes.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// FromDB translates a database error into the taxonomy. It prefers
// postgres diagnostics (column and constraint names), falls back to
// gorm's translated sentinels for other drivers, and classifies
// connection failures as unavailable.
func FromDB(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		ce := &ConstraintError{Column: pgErr.ColumnName, Constraint: pgErr.ConstraintName, Cause: err}
		switch pgErr.Code {
		case pgNotNullViolation:
			ce.Kind = ConstraintNotNull
		case pgUniqueViolation:
			ce.Kind = ConstraintUnique
		case pgForeignKeyViolation:
			ce.Kind = ConstraintForeignKey
		case pgCheckViolation:
			ce.Kind = ConstraintCheck
		default:
			if strings.HasPrefix(pgErr.Code, "08") { // connection exceptions
				return &UnavailableError{Cause: err}
			}
			ce.Kind = ConstraintOther
		}
		return ce
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintError{Kind: ConstraintUnique, Cause: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintError{Kind: ConstraintForeignKey, Cause: err}
	case errors.Is(err, gorm.ErrInvalidTransaction):
		return &UnavailableError{Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &UnavailableError{Cause: err}
	}

	// sqlite reports constraint failures as plain strings; the test
	// database runs on sqlite.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &ConstraintError{Kind: ConstraintForeignKey, Cause: err}
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &ConstraintError{Kind: ConstraintUnique, Constraint: sqliteConstraintColumn(msg), Cause: err}
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return &ConstraintError{Kind: ConstraintNotNull, Column: sqliteConstraintColumn(msg), Cause: err}
	case strings.Contains(msg, "CHECK constraint failed"):
		return &ConstraintError{Kind: ConstraintCheck, Cause: err}
	}

	return err
}

// sqliteConstraintColumn pulls "table.column" out of messages like
// "UNIQUE constraint failed: customers.email".
func sqliteConstraintColumn(msg string) string {
	i := strings.LastIndex(msg, ": ")
	if i < 0 {
		return ""
	}
	ref := strings.TrimSpace(msg[i+2:])
	if j := strings.Index(ref, "."); j >= 0 {
		ref = ref[j+1:]
	}
	return ref
}
