package jwtx

import "errors"

// Verifier validates a compact token string and returns its claims if the
// signature and expiry check out.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer turns a claims set into a signed compact token string.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

var (
	// ErrMalformed reports a token that doesn't parse as a compact JWS at
	// all (wrong segment count, bad base64, bad JSON).
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrInvalidSig reports a structurally valid token whose signature does
	// not verify against the key. Any tampering with header, payload or
	// signature lands here.
	ErrInvalidSig = errors.New("jwtx: invalid signature")

	// ErrExpired reports a token past its expiry instant.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrIssuer reports an issuer claim mismatch.
	ErrIssuer = errors.New("jwtx: issuer mismatch")
)
