package errs

import "strings"

// FieldError describes one invalid field of a request payload.
//
//	{ "field": "sender.name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// AuthDebug is attached to 401 responses when debug disclosure is enabled.
type AuthDebug struct {
	// ReceivedKey is a masked prefix of the presented credential.
	ReceivedKey string `json:"received_key"`

	// HeadersFound lists the request header names, sorted.
	HeadersFound []string `json:"headers_found"`
}

// HTTPError is the main error type for API responses.
//
//   - Success: always false on the wire.
//   - Message: human-friendly message.
//   - Code: machine-friendly code (e.g. "BAD_REQUEST"), logged only.
//   - Status: HTTP status code.
//   - Override: the message is safe to show as-is (set by sqlerr for friendly messages).
type HTTPError struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Debug   *AuthDebug   `json:"debug,omitempty"`

	Code     string `json:"-"`
	Status   int    `json:"-"`
	Override bool   `json:"-"`
}

// Error returns the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of status or code.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// WithDebug returns a copy of e carrying the auth debug block.
func (e *HTTPError) WithDebug(debug *AuthDebug) *HTTPError {
	clone := *e
	clone.Debug = debug
	return &clone
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
