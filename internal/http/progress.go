package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apitrail/apitrail/internal/service"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/pkg/httpx"
	"github.com/apitrail/apitrail/pkg/slogx"
	"github.com/apitrail/apitrail/pkg/trailsdk"
)

// ProgressHandler serves the per-user progress endpoints. The entry is
// always the token subject's own; progress of other users is not
// addressable.
type ProgressHandler struct {
	Progress *service.ProgressService
}

// HandleGet handles GET /progress
//
//	@Summary		Get Progress
//	@Description	Returns the caller's progress entry. An account that somehow
//	@Description	lost its entry gets a fresh default one instead of an error.
//	@Tags			Progress
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trailsdk.ProgressResponse	"current_level, completed_levels, points"
//	@Failure		401	{object}	trailsdk.APIError			"invalid_token"
//	@Failure		404	{object}	trailsdk.APIError			"account no longer exists"
//	@Failure		500	{object}	trailsdk.APIError			"server_error"
//	@Router			/progress [get].
func (h *ProgressHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		trailsdk.ErrInvalidToken.WriteError(w)
		return
	}

	progress, err := h.Progress.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			trailsdk.NewAPIError(http.StatusNotFound,
				trailsdk.ErrorCodeNotFound,
				"account not found",
			).WriteError(w)
			return
		}
		log.Error("failed to load progress", "user_id", userID, "err", err)
		trailsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, progressResponse(progress))
}

// HandleUpdate handles PUT /progress
//
//	@Summary		Replace Progress
//	@Description	Replaces the caller's progress entry wholesale with the request
//	@Description	body. Nothing is merged: the submitted current_level,
//	@Description	completed_levels and points become the new state as-is, and the
//	@Description	last write wins under concurrency.
//	@Tags			Progress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trailsdk.ProgressRequest	true	"The complete replacement state"
//	@Success		200		{object}	trailsdk.ProgressResponse	"the stored entry"
//	@Failure		400		{object}	trailsdk.APIError			"validation_error"
//	@Failure		401		{object}	trailsdk.APIError			"invalid_token"
//	@Failure		404		{object}	trailsdk.APIError			"account no longer exists"
//	@Failure		500		{object}	trailsdk.APIError			"server_error"
//	@Router			/progress [put].
func (h *ProgressHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		trailsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req trailsdk.ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		trailsdk.NewAPIError(http.StatusBadRequest,
			trailsdk.ErrorCodeValidation,
			"invalid JSON in request body",
		).WriteError(w)
		return
	}

	progress, err := h.Progress.UpdateProgress(ctx, userID, req.CurrentLevel, req.CompletedLevels, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLevel), errors.Is(err, service.ErrInvalidPoints):
			trailsdk.NewAPIError(http.StatusBadRequest,
				trailsdk.ErrorCodeValidation,
				err.Error(),
			).WriteError(w)
		case errors.Is(err, store.ErrNotFound):
			trailsdk.NewAPIError(http.StatusNotFound,
				trailsdk.ErrorCodeNotFound,
				"account not found",
			).WriteError(w)
		default:
			log.Error("failed to update progress", "user_id", userID, "err", err)
			trailsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, progressResponse(progress))
}
