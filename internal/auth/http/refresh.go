package http

import (
	"errors"
	"net/http"

	"github.com/medibook/medibook/internal/auth/domain"
	"github.com/medibook/medibook/internal/auth/service"
	"github.com/medibook/medibook/pkg/authsdk"
	"github.com/medibook/medibook/pkg/httpx"
	"github.com/medibook/medibook/pkg/slogx"
)

type RefreshHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP exchanges a refresh token for a fresh token pair.
//
//	@Summary		Refresh the token pair
//	@Description	Takes a refresh token from the Refresh-Token request header and returns a
//	@Description	new token pair via the same headers as login. Authorities are re-read from
//	@Description	the account, so permission changes apply on the next refresh.
//	@Tags			Auth
//	@Produce		json
//	@Param			Refresh-Token	header		string			true	"Refresh token"
//	@Success		200				{object}	httpx.Envelope	"token_type and expires_in in data"
//	@Failure		400				{object}	httpx.Envelope	"Missing refresh token header"
//	@Failure		401				{object}	httpx.Envelope	"Expired or invalid refresh token"
//	@Failure		500				{object}	httpx.Envelope	"Internal server error"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	refreshToken := r.Header.Get("Refresh-Token")
	if refreshToken == "" {
		httpx.BadRequest("validation failed", map[string]string{
			"Refresh-Token": "header must be present",
		}).WriteError(w)
		return
	}

	pair, err := h.TokenService.Refresh(ctx, refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExpiredToken):
			httpx.ErrTokenExpired.WriteError(w)
		case errors.Is(err, service.ErrMalformedToken), errors.Is(err, service.ErrBadSignature):
			httpx.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("refresh failed", "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	writeTokenPair(w, pair)
}

// writeTokenPair delivers tokens through response headers, with lifetime
// metadata in the body envelope.
func writeTokenPair(w http.ResponseWriter, pair *domain.TokenPair) {
	w.Header().Set("Authorization", "Bearer "+pair.AccessToken)
	w.Header().Set("Refresh-Token", pair.RefreshToken)
	httpx.WriteSuccess(w, http.StatusOK, "authenticated", authsdk.TokenMetadata{
		TokenType: "Bearer",
		ExpiresIn: pair.ExpiresIn,
	})
}
