package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/errs"
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

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `insert or update on table "bao_parcels" violates foreign key constraint`,
		TableName:      "bao_parcels",
		ColumnName:     "recipient_id",
		ConstraintName: "bao_parcels_recipient_id_fkey",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert parcel: %w", pgErr)))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PARCEL_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Recipient does not exist", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "bao_senders", ColumnName: "address_details"}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "SENDER_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Address Details is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "address_details", httpErr.Errors[0].Field)
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", TableName: "bao_parcels", ConstraintName: "bao_parcels_tracking_key"}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "A Parcel with this Tracking already exists", httpErr.Message)
}

func TestHandleError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", TableName: "bao_parcels", ColumnName: "status"}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PARCEL_INVALID", httpErr.Code)
	assert.Equal(t, "The Status value does not meet required conditions", httpErr.Message)
}

func TestHandleError_OtherPgErrorKeepsText(t *testing.T) {
	pgErr := &pgconn.PgError{Severity: "ERROR", Code: "42P01", Message: `relation "bao_parcels" does not exist`}
	err := fmt.Errorf("insert parcel: %w", pgErr)

	httpErr := asHTTPError(t, HandleError(err))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, err.Error(), httpErr.Message)
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(sql.ErrNoRows))

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_Unknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "connection refused", httpErr.Message)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewUnauthorizedError("Invalid API Key", false)

	assert.Same(t, original, HandleError(original))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, IntegrityViolation, MapCode("23001"))
	assert.Equal(t, ConnectionException, MapCode("08006"))
	assert.Equal(t, Other, MapCode("XX000"))
	assert.True(t, MapCode("23514").IsConstraintViolation())
	assert.False(t, MapCode("42P01").IsConstraintViolation())
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrap: %w", pgErr)))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("bogus"))
}
