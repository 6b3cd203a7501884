package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorUniqueEmail(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "users_email_key"`,
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("creating user: %w", pgErr)))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A user with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorForeignKeyOwner(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		TableName:      "properties",
		ConstraintName: "properties_owner_id_fkey",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, "PROPERTY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced owner does not exist", httpErr.Message)
}

func TestHandleErrorNotNull(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		TableName:  "properties",
		ColumnName: "post_code",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, "PROPERTY_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Post Code is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "post_code", httpErr.Errors[0].Field)
}

func TestHandleErrorUnknownPgErrorIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&pgconn.PgError{Code: "53300", Severity: "FATAL"}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("finding user: %w", pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewUnauthorizedError("invalid email or password", true)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorGenericIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset by peer")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})

	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(converted, &pgErr))
}

func TestSingular(t *testing.T) {
	cases := map[string]string{
		"users":            "user",
		"properties":       "property",
		"PROPERTIES":       "PROPERTY",
		"property_reviews": "property_review",
		"s":                "s",
	}
	for in, want := range cases {
		assert.Equal(t, want, singular(in), in)
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
}

func TestExtractColumnForForeignKeyViolation(t *testing.T) {
	assert.Equal(t, "owner_id", extractColumnForForeignKeyViolation("properties_owner_id_fkey"))
	assert.Equal(t, "reservation_id", extractColumnForForeignKeyViolation("property_reviews_reservation_id_fkey"))
	assert.Equal(t, "", extractColumnForForeignKeyViolation("users_email_key"))
}
