// Package http wires the auth service's handlers, middleware, and routes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/medibook/medibook/internal/auth/service"
	"github.com/medibook/medibook/internal/auth/store"
	"github.com/medibook/medibook/pkg/httpx"
	"github.com/medibook/medibook/pkg/jwtx"
	"github.com/medibook/medibook/pkg/slogx"

	_ "github.com/medibook/medibook/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	exemptPaths  []string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	AuthService  *service.AuthService
	TokenService *service.TokenService
}

func NewRouter(
	verifier jwtx.Verifier,
	exemptPaths []string,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		exemptPaths:  exemptPaths,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Global chain: request logging, then bearer validation. Exempt paths
	// bypass token handling entirely; everything else gets a Security
	// context when a valid token is presented.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.AuthnMiddleware(r.verifier, r.exemptPaths),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUserInfo()
	r.registerPrincipals()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MediBook Authentication Service API
//	@version		0.1.0
//	@description	Stateless token-based authentication for the MediBook clinic platform.
//	@description
//	@description				Access tokens are signed with HS256 and carry the caller's identifier
//	@description				and authorities. Refresh tokens live twice as long as access tokens.
//
//	@contact.name				MediBook Platform Team
//	@contact.url				https://github.com/medibook/medibook
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{
		AuthService:  r.AuthService,
		TokenService: r.TokenService,
	}

	// POST /auth/login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/refresh - strict rate limit by IP
	refreshHandler := &RefreshHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUserInfo() {
	h := &UserInfoHandler{AuthService: r.AuthService}

	// Authenticated endpoint - lenient rate limit by identity
	secured := httpx.Chain(h,
		httpx.RequireAuthenticated(),
		httpx.RateLimitByIdentity(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/userinfo", secured)
}

func (r *Router) registerPrincipals() {
	h := &PrincipalsHandler{AuthService: r.AuthService}

	// Admin-only listing - moderate rate limit by identity
	secured := httpx.Chain(h,
		httpx.RequireAnyAuthority("admin"),
		httpx.RateLimitByIdentity(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/principals", secured)
}

func (r *Router) registerSystem() {
	// Health probes - lenient limits, monitoring may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
