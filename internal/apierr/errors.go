// Package apierr defines the API error taxonomy and the JSON error envelope
// returned to callers.
package apierr

import "net/http"

// Kind names the error class in the response envelope.
type Kind string

const (
	KindBadRequest    Kind = "BadRequestError"
	KindValidation    Kind = "ValidationError"
	KindAuth          Kind = "AuthError"
	KindConfiguration Kind = "ConfigurationError"
)

// APIError is a client-facing failure with an HTTP status code.
type APIError struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// BadRequest builds a 400 BadRequestError.
func BadRequest(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message, StatusCode: http.StatusBadRequest}
}

// UnsupportedMediaType builds a 415 for a wrong request content type.
func UnsupportedMediaType(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message, StatusCode: http.StatusUnsupportedMediaType}
}

// Validation builds a 400 ValidationError.
func Validation(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message, StatusCode: http.StatusBadRequest}
}

// Forbidden builds a 403 AuthError.
func Forbidden(message string) *APIError {
	return &APIError{Kind: KindAuth, Message: message, StatusCode: http.StatusForbidden}
}

// Unauthorized builds a 401 AuthError.
func Unauthorized(message string) *APIError {
	return &APIError{Kind: KindAuth, Message: message, StatusCode: http.StatusUnauthorized}
}

// ErrorItem is one entry in the error envelope.
type ErrorItem struct {
	Error   Kind   `json:"error"`
	Message string `json:"message"`
}

// Envelope is the JSON failure response body:
// {"errors": [{"error": <Kind>, "message": <text>}], "status_code": <n>}.
type Envelope struct {
	Errors     []ErrorItem `json:"errors"`
	StatusCode int         `json:"status_code"`
}

// ToEnvelope wraps an APIError in the response envelope.
func ToEnvelope(e *APIError) *Envelope {
	return &Envelope{
		Errors:     []ErrorItem{{Error: e.Kind, Message: e.Message}},
		StatusCode: e.StatusCode,
	}
}
