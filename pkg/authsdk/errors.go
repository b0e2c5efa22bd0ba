package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// APIError is an error response from the auth service.
type APIError struct {
	StatusCode int
	Message    string
	Timestamp  time.Time
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth service: %d %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports a 401 response.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports a 403 response.
func (e *APIError) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Timestamp:  env.Timestamp,
			Fields:     env.Errors,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
