package apperrors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromDBNil(t *testing.T) {
	assert.NoError(t, FromDB(nil))
}

func TestFromDBPostgresDiagnostics(t *testing.T) {
	cases := []struct {
		code    string
		kind    ConstraintKind
		name    string
		message string
	}{
		{"23502", ConstraintNotNull, "Required field missing", "email cannot be null"},
		{"23505", ConstraintUnique, "Duplicate value", "customers_email must be unique"},
		{"23503", ConstraintForeignKey, "Invalid Relationship", "instance referenced by email doesn't exist"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := FromDB(&pgconn.PgError{
				Code:           tc.code,
				ColumnName:     "email",
				ConstraintName: "customers_email_key",
			})

			var ce *ConstraintError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.kind, ce.Kind)
			assert.Equal(t, tc.name, ce.Name())
			assert.Equal(t, tc.message, ce.Message())
		})
	}
}

func TestFromDBConnectionExceptionIsUnavailable(t *testing.T) {
	err := FromDB(&pgconn.PgError{Code: "08006"})

	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
}

func TestFromDBGormSentinels(t *testing.T) {
	var ce *ConstraintError

	require.ErrorAs(t, FromDB(gorm.ErrDuplicatedKey), &ce)
	assert.Equal(t, ConstraintUnique, ce.Kind)

	require.ErrorAs(t, FromDB(gorm.ErrForeignKeyViolated), &ce)
	assert.Equal(t, ConstraintForeignKey, ce.Kind)
}

func TestFromDBSQLiteMessages(t *testing.T) {
	var ce *ConstraintError

	err := FromDB(errors.New("UNIQUE constraint failed: customers.email"))
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ConstraintUnique, ce.Kind)
	assert.Equal(t, "email must be unique", ce.Message())

	err = FromDB(errors.New("FOREIGN KEY constraint failed"))
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ConstraintForeignKey, ce.Kind)
}

func TestFromDBPassesThroughUnknownErrors(t *testing.T) {
	cause := errors.New("some driver hiccup")
	assert.Equal(t, cause, FromDB(cause))
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Resource: "Book", ID: 12}
	assert.Equal(t, "Book with ID 12 not found", err.Error())
}
