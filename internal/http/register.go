package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/apitrail/apitrail/internal/service"
	"github.com/apitrail/apitrail/pkg/httpx"
	"github.com/apitrail/apitrail/pkg/slogx"
	"github.com/apitrail/apitrail/pkg/trailsdk"
)

type RegisterHandler struct {
	Accounts *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account. The response carries a session token, so a
//	@Description	fresh registration is already logged in. Every account starts at
//	@Description	level 1 with zero points.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trailsdk.RegisterRequest	true	"Desired username, email and password"
//	@Success		201		{object}	trailsdk.AuthResponse		"token and user profile"
//	@Failure		400		{object}	trailsdk.APIError			"validation_error or conflict"
//	@Failure		429		{object}	trailsdk.APIError			"rate_limited"
//	@Failure		500		{object}	trailsdk.APIError			"server_error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trailsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		trailsdk.NewAPIError(http.StatusBadRequest,
			trailsdk.ErrorCodeValidation,
			"invalid JSON in request body",
		).WriteError(w)
		return
	}

	// Name each missing field; the service would catch these too, but a
	// field-specific message beats a generic one.
	if strings.TrimSpace(req.Username) == "" {
		writeMissingField(w, "username")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeMissingField(w, "email")
		return
	}
	if req.Password == "" {
		writeMissingField(w, "password")
		return
	}

	user, token, err := h.Accounts.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			trailsdk.NewAPIError(http.StatusBadRequest,
				trailsdk.ErrorCodeValidation,
				err.Error(),
			).WriteError(w)
		case errors.Is(err, service.ErrUsernameTaken):
			trailsdk.NewAPIError(http.StatusBadRequest,
				trailsdk.ErrorCodeConflict,
				"username already taken",
			).WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			trailsdk.NewAPIError(http.StatusBadRequest,
				trailsdk.ErrorCodeConflict,
				"email already registered",
			).WriteError(w)
		default:
			log.Error("failed to register account", "err", err)
			trailsdk.ErrServerError.WriteError(w)
		}
		return
	}

	response := trailsdk.AuthResponse{
		Token: token,
		User:  profileFromUser(user),
	}

	httpx.WriteJSON(w, http.StatusCreated, response)
}

// writeMissingField emits the standard validation envelope for an absent
// required field.
func writeMissingField(w http.ResponseWriter, field string) {
	trailsdk.NewAPIError(http.StatusBadRequest,
		trailsdk.ErrorCodeValidation,
		field+" is required",
	).WriteError(w)
}
