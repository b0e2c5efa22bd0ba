package httpx

import "context"

// Security is the request-scoped identity established by AuthnMiddleware.
// Handlers read it from the request context instead of any process-global
// state, so concurrent requests never observe each other's identity.
type Security struct {
	Identifier  string
	Authorities []string
}

// HasAuthority reports whether the caller holds the named authority.
func (s Security) HasAuthority(authority string) bool {
	for _, a := range s.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

type securityKey struct{}

// WithSecurity stores the caller's identity in ctx.
func WithSecurity(ctx context.Context, sec Security) context.Context {
	return context.WithValue(ctx, securityKey{}, sec)
}

// SecurityFromContext returns the caller's identity, if any was established.
func SecurityFromContext(ctx context.Context) (Security, bool) {
	sec, ok := ctx.Value(securityKey{}).(Security)
	return sec, ok
}
