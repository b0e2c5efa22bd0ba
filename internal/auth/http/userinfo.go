package http

import (
	"net/http"

	"github.com/medibook/medibook/internal/auth/service"
	"github.com/medibook/medibook/pkg/authsdk"
	"github.com/medibook/medibook/pkg/httpx"
)

type UserInfoHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the authenticated caller's identity.
//
//	@Summary		Get caller identity
//	@Description	Returns the identifier and authorities of the authenticated caller, as
//	@Description	established from the bearer token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope	"identifier and authorities in data"
//	@Failure		401	{object}	httpx.Envelope	"Missing or invalid access token"
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sec, ok := httpx.SecurityFromContext(r.Context())
	if !ok {
		httpx.ErrAuthenticationRequired.WriteError(w)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "ok", authsdk.UserInfo{
		Identifier:  sec.Identifier,
		Authorities: sec.Authorities,
	})
}
