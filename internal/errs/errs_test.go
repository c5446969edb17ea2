package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_JSONShape(t *testing.T) {
	err := NewUnauthorizedError(MessageInvalidAPIKey, false)

	body, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"success":false,"message":"Invalid API Key"}`, string(body))
}

func TestHTTPError_JSONWithFieldErrorsAndDebug(t *testing.T) {
	err := NewInvalidJSONError([]FieldError{{Field: "sender.name", Error: "is required"}}).
		WithDebug(&AuthDebug{ReceivedKey: "abc...", HeadersFound: []string{"Accept"}})

	body, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{
		"success": false,
		"message": "Invalid JSON data",
		"errors": [{"field": "sender.name", "error": "is required"}],
		"debug": {"received_key": "abc...", "headers_found": ["Accept"]}
	}`, string(body))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("x", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad request", NewBadRequestError("x", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid json", NewInvalidJSONError(nil), http.StatusBadRequest, "INVALID_JSON"},
		{"not found", NewNotFoundError("x", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"method", NewMethodNotAllowedError(), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"internal", NewInternalServerError("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.False(t, tt.err.Success)
		})
	}
}

func TestNewInternalServerError_DefaultMessage(t *testing.T) {
	assert.Equal(t, "Internal Server Error", NewInternalServerError("").Message)
	assert.Equal(t, "connection refused", NewInternalServerError("connection refused").Message)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("create parcel: %w", NewBadRequestError("bad", false, nil, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "bad", httpErr.Message)
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	changed := base.WithMessage("Parcel not found")

	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, "Parcel not found", changed.Message)
	assert.Equal(t, base.Status, changed.Status)
}
