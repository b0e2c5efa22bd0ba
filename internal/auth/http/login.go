package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/medibook/medibook/internal/auth/service"
	"github.com/medibook/medibook/pkg/authsdk"
	"github.com/medibook/medibook/pkg/httpx"
	"github.com/medibook/medibook/pkg/slogx"
)

type LoginHandler struct {
	AuthService  *service.AuthService
	TokenService *service.TokenService
}

// ServeHTTP handles credential login.
//
//	@Summary		Login with identifier and secret
//	@Description	Exchanges an identifier/secret pair for a token pair. The access token is
//	@Description	returned in the Authorization response header ("Bearer {token}") and the
//	@Description	refresh token in the Refresh-Token header.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	httpx.Envelope			"token_type and expires_in in data"
//	@Failure		400		{object}	httpx.Envelope			"Malformed or incomplete request"
//	@Failure		401		{object}	httpx.Envelope			"Invalid credentials"
//	@Failure		500		{object}	httpx.Envelope			"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	req.Identifier = strings.TrimSpace(req.Identifier)
	fields := map[string]string{}
	if req.Identifier == "" {
		fields["identifier"] = "must not be empty"
	}
	if req.Secret == "" {
		fields["secret"] = "must not be empty"
	}
	if len(fields) > 0 {
		httpx.BadRequest("validation failed", fields).WriteError(w)
		return
	}

	principal, err := h.AuthService.Authenticate(ctx, req.Identifier, req.Secret)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("authenticate failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	pair, err := h.TokenService.IssuePair(principal)
	if err != nil {
		log.Error("token issuance failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	writeTokenPair(w, pair)
	log.Info("login succeeded", "identifier", principal.Identifier)
}
