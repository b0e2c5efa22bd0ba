package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/medibook/medibook/pkg/jwtx"
	"github.com/medibook/medibook/pkg/slogx"
)

// AuthnMiddleware validates bearer tokens and establishes the request's
// Security context.
//
// Exempt paths are matched exactly and skip token handling entirely, even
// when the request carries an Authorization header. A request without a
// bearer token proceeds anonymously; whether that is acceptable is decided
// later by authority checks on the route. A request that does present a
// bearer token must present a valid one.
func AuthnMiddleware(v jwtx.Verifier, exemptPaths []string) Middleware {
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exempt[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				// No credential offered. Continue anonymously.
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				verifyError(err).WriteError(w)
				slogx.FromContext(r.Context()).Warn("bearer token rejected", "err", err)
				return
			}

			// Refresh tokens are only good for the refresh endpoint, never
			// as an access credential.
			if claims.TokenType != jwtx.TokenTypeAccess || claims.Identifier == "" {
				ErrInvalidToken.WriteError(w)
				return
			}

			ctx := WithSecurity(r.Context(), Security{
				Identifier:  claims.Identifier,
				Authorities: claims.AuthorityList(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. A missing
// header or an unrecognised scheme yields ok=false rather than an error.
func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer")), true
}

func verifyError(err error) *APIError {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return ErrTokenExpired
	case errors.Is(err, jwtx.ErrInvalidSig), errors.Is(err, jwtx.ErrMalformed), errors.Is(err, jwtx.ErrIssuer):
		return ErrInvalidToken
	default:
		return ErrServerError
	}
}
