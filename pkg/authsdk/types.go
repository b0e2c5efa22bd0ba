package authsdk

import "time"

// LoginRequest carries the credential pair presented to the login endpoint.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// TokenPair is the result of a successful login or refresh. The tokens
// themselves travel in the Authorization and Refresh-Token response headers;
// the body only describes them.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int // access token lifetime in seconds
}

// TokenMetadata is the body payload accompanying a token response.
type TokenMetadata struct {
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// UserInfo describes the authenticated caller.
type UserInfo struct {
	Identifier  string   `json:"identifier"`
	Authorities []string `json:"authorities"`
}

// Principal is an account summary as listed by the admin endpoint.
type Principal struct {
	ID          string    `json:"id"`
	Identifier  string    `json:"identifier"`
	Authorities []string  `json:"authorities"`
	CreatedAt   time.Time `json:"created_at"`
}

// HealthResponse is the body of the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// envelope mirrors the service's uniform response body.
type envelope[T any] struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors"`
	Data      T                 `json:"data"`
}
