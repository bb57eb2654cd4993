package http

import (
	"errors"
	"net/http"

	"github.com/apitrail/apitrail/internal/service"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/pkg/httpx"
	"github.com/apitrail/apitrail/pkg/slogx"
	"github.com/apitrail/apitrail/pkg/trailsdk"
)

// MeHandler serves the authenticated account endpoints. Both operations
// act on the token subject only; there is no way to address another
// user's account.
type MeHandler struct {
	Accounts *service.AccountService
}

// HandleGet handles GET /auth/me
//
//	@Summary		Get Own Profile
//	@Description	Returns the profile of the account the session token belongs to.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trailsdk.UserProfile	"id, username, email, created_at"
//	@Failure		401	{object}	trailsdk.APIError		"invalid_token"
//	@Failure		404	{object}	trailsdk.APIError		"account no longer exists"
//	@Failure		500	{object}	trailsdk.APIError		"server_error"
//	@Router			/auth/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		trailsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.Accounts.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Valid token for a deleted account
			trailsdk.NewAPIError(http.StatusNotFound,
				trailsdk.ErrorCodeNotFound,
				"account not found",
			).WriteError(w)
			return
		}
		log.Error("failed to load account", "user_id", userID, "err", err)
		trailsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileFromUser(user))
}

// HandleDelete handles DELETE /auth/me
//
//	@Summary		Delete Own Account
//	@Description	Permanently removes the account and its progress. Outstanding
//	@Description	session tokens keep verifying until expiry but every endpoint
//	@Description	behind them returns 404 once the account is gone.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		204	"account removed"
//	@Failure		401	{object}	trailsdk.APIError	"invalid_token"
//	@Failure		404	{object}	trailsdk.APIError	"account no longer exists"
//	@Failure		500	{object}	trailsdk.APIError	"server_error"
//	@Router			/auth/me [delete].
func (h *MeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		trailsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.Accounts.DeleteAccount(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			trailsdk.NewAPIError(http.StatusNotFound,
				trailsdk.ErrorCodeNotFound,
				"account not found",
			).WriteError(w)
			return
		}
		log.Error("failed to delete account", "user_id", userID, "err", err)
		trailsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
