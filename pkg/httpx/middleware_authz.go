package httpx

import "net/http"

// RequireAuthenticated rejects anonymous requests.
func RequireAuthenticated() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SecurityFromContext(r.Context()); !ok {
				ErrAuthenticationRequired.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyAuthority requires an authenticated caller holding at least one
// of the listed authorities. Anonymous callers get 401, authenticated callers
// without a matching authority get 403.
func RequireAnyAuthority(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sec, ok := SecurityFromContext(r.Context())
			if !ok {
				ErrAuthenticationRequired.WriteError(w)
				return
			}

			for _, a := range required {
				if sec.HasAuthority(a) {
					next.ServeHTTP(w, r)
					return
				}
			}

			ErrAccessDenied.WriteError(w)
		})
	}
}
