package http

import (
	"net/http"

	"github.com/medibook/medibook/internal/auth/service"
	"github.com/medibook/medibook/pkg/authsdk"
	"github.com/medibook/medibook/pkg/httpx"
	"github.com/medibook/medibook/pkg/slogx"
)

type PrincipalsHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP lists all accounts. Requires the admin authority.
//
//	@Summary		List accounts
//	@Description	Returns every account with its authorities. Secret hashes never leave the
//	@Description	service. Requires the 'admin' authority.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope	"account list in data"
//	@Failure		401	{object}	httpx.Envelope	"Missing or invalid access token"
//	@Failure		403	{object}	httpx.Envelope	"Caller lacks the admin authority"
//	@Failure		500	{object}	httpx.Envelope	"Internal server error"
//	@Router			/v1/principals [get].
func (h *PrincipalsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	creds, err := h.AuthService.List(ctx)
	if err != nil {
		log.Error("list principals failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	out := make([]authsdk.Principal, 0, len(creds))
	for _, c := range creds {
		out = append(out, authsdk.Principal{
			ID:          c.ID,
			Identifier:  c.Identifier,
			Authorities: c.Authorities,
			CreatedAt:   c.CreatedAt,
		})
	}

	httpx.WriteSuccess(w, http.StatusOK, "ok", out)
}
