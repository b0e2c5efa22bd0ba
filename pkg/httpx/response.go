package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// Envelope is the uniform response body. Error responses always carry
// success=false, a safe human-readable message, and the moment the response
// was produced; field-level detail rides in Errors.
type Envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
	Data      any               `json:"data,omitempty"`
}

// WriteJSON writes v as JSON with the given status. Sets Content-Type and
// disables caching, since most of what this service returns is sensitive.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a success envelope around data.
func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

// NoCache disables response caching. Token and credential responses must
// never land in a shared cache.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// APIError is an HTTP-mapped error value. Services return these (or wrap
// sentinel errors into them) and handlers write them with WriteError, so
// every failure leaves through the same envelope.
type APIError struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

// WriteError renders the error as an envelope with its mapped status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	WriteJSON(w, e.Status, Envelope{
		Success:   false,
		Message:   e.Message,
		Timestamp: time.Now().UTC(),
		Errors:    e.Fields,
	})
}

// Predefined error values. Messages are deliberately generic: credential and
// token failures must not leak which part of the check failed.
var (
	ErrInvalidRequest         = &APIError{Status: http.StatusBadRequest, Message: "invalid request"}
	ErrInvalidCredentials     = &APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
	ErrTokenExpired           = &APIError{Status: http.StatusUnauthorized, Message: "token expired"}
	ErrInvalidToken           = &APIError{Status: http.StatusUnauthorized, Message: "invalid token"}
	ErrAuthenticationRequired = &APIError{Status: http.StatusUnauthorized, Message: "authentication required"}
	ErrAccessDenied           = &APIError{Status: http.StatusForbidden, Message: "access denied"}
	ErrMethodNotAllowed       = &APIError{Status: http.StatusMethodNotAllowed, Message: "method not allowed"}
	ErrServerError            = &APIError{Status: http.StatusInternalServerError, Message: "internal server error"}
)

// BadRequest builds a 400 with field-level validation detail.
func BadRequest(message string, fields map[string]string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Fields: fields}
}
