// Package domain holds the auth service's core types, free of transport and
// storage concerns.
package domain

import "time"

// Credential is a stored account record, including the secret hash. It never
// leaves the service boundary.
type Credential struct {
	ID          string
	Identifier  string
	SecretHash  string
	Authorities []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Principal is the public view of an authenticated account.
type Principal struct {
	Identifier  string
	Authorities []string
}

// Principal strips the secret material from a credential.
func (c Credential) Principal() Principal {
	return Principal{Identifier: c.Identifier, Authorities: c.Authorities}
}

// TokenPair bundles the two tokens minted at login or refresh. ExpiresIn is
// the access token lifetime in seconds; the refresh token lives twice as long.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}
