package jwtx

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessSubject is the fixed subject label stamped on every access token.
	// The caller's identity travels in the identifier claim, not the subject.
	AccessSubject = "user-details"

	// TokenTypeAccess marks tokens usable for resource authorization.
	TokenTypeAccess = "access"

	// TokenTypeRefresh marks tokens usable only at the refresh endpoint.
	TokenTypeRefresh = "refresh"
)

// DefaultAccessTokenTTL is the access-token lifetime used when the service
// configuration doesn't override it. Refresh tokens live twice as long.
const DefaultAccessTokenTTL = 15 * time.Minute

// Claims is the signed claims set for both token flavours. Authorities travel
// as a single comma-joined string so the claim survives round-trips through
// systems that only understand string claims.
type Claims struct {
	jwt.RegisteredClaims

	// Identifier is the principal's login identifier (username or email).
	Identifier string `json:"identifier,omitempty"`

	// Authorities is the principal's role names, comma-joined in the order
	// the principal store returned them.
	Authorities string `json:"authorities,omitempty"`

	// TokenType is "access" or "refresh".
	TokenType string `json:"token_type,omitempty"`
}

// NewAccessClaims builds the claims set for an access token.
func NewAccessClaims(identifier string, authorities []string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   AccessSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Identifier:  identifier,
		Authorities: JoinAuthorities(authorities),
		TokenType:   TokenTypeAccess,
	}
}

// NewRefreshClaims builds the claims set for a refresh token. The subject
// carries the identifier so the refresh exchange can re-resolve the principal
// without any other claim.
func NewRefreshClaims(identifier string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identifier,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Identifier: identifier,
		TokenType:  TokenTypeRefresh,
	}
}

// AuthorityList splits the comma-joined authorities claim. An empty or absent
// claim yields an empty set, never an error.
func (c *Claims) AuthorityList() []string {
	return SplitAuthorities(c.Authorities)
}

// ValidateIssuer checks the issuer claim against the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry enforces a strict expiry instant: a token is dead the moment
// now reaches exp.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}

// JoinAuthorities encodes an authority list for the authorities claim,
// preserving order.
func JoinAuthorities(authorities []string) string {
	return strings.Join(authorities, ",")
}

// SplitAuthorities decodes a comma-joined authorities claim, dropping empty
// segments.
func SplitAuthorities(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
