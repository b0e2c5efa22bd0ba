package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyBytes is the smallest HS256 key we accept. HMAC-SHA256 keys below
// 256 bits are brute-forceable offline from a single captured token.
const MinKeyBytes = 32

// ErrKeyTooShort reports a signing key under MinKeyBytes.
var ErrKeyTooShort = errors.New("jwtx: HS256 key must be at least 32 bytes")

// HS256Signer signs tokens with a single symmetric key. The key is set once
// at construction and never changes, so concurrent use needs no locking.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer from raw key bytes.
func NewSignerHS256(key []byte) (*HS256Signer, error) {
	if len(key) < MinKeyBytes {
		return nil, ErrKeyTooShort
	}
	return &HS256Signer{key: key}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign serializes the claims into a signed compact token string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}

// HS256Verifier validates tokens signed with the same symmetric key.
type HS256Verifier struct {
	key    []byte
	issuer string
}

// NewVerifierHS256 creates a verifier for the shared key. An empty issuer
// means the issuer claim isn't enforced.
func NewVerifierHS256(key []byte, issuer string) (*HS256Verifier, error) {
	if len(key) < MinKeyBytes {
		return nil, ErrKeyTooShort
	}
	return &HS256Verifier{key: key, issuer: issuer}, nil
}

// Verify parses and validates the token string, returning its claims.
// Failures map onto the jwtx sentinel errors so callers can dispatch with
// errors.Is instead of string matching.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	// The parser already rejects clearly expired tokens; this re-check makes
	// the boundary strict (dead at exactly exp).
	if err := claims.ValidateExpiry(time.Now().UTC()); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// mapParseError collapses the jwt library's error tree into the jwtx
// sentinels. Unknown parse failures count as malformed: the token never got
// far enough for its signature to matter.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrMalformed
	}
}
