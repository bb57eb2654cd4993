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

type LoginHandler struct {
	Accounts *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a session token. The response
//	@Description	never says whether the email or the password was wrong.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trailsdk.LoginRequest	true	"Email and password"
//	@Success		200		{object}	trailsdk.AuthResponse	"token and user profile"
//	@Failure		400		{object}	trailsdk.APIError		"validation_error"
//	@Failure		401		{object}	trailsdk.APIError		"invalid_credentials"
//	@Failure		429		{object}	trailsdk.APIError		"rate_limited"
//	@Failure		500		{object}	trailsdk.APIError		"server_error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trailsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		trailsdk.NewAPIError(http.StatusBadRequest,
			trailsdk.ErrorCodeValidation,
			"invalid JSON in request body",
		).WriteError(w)
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

	user, token, err := h.Accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			trailsdk.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrMissingFields):
			trailsdk.NewAPIError(http.StatusBadRequest,
				trailsdk.ErrorCodeValidation,
				err.Error(),
			).WriteError(w)
		default:
			log.Error("failed to log in", "err", err)
			trailsdk.ErrServerError.WriteError(w)
		}
		return
	}

	response := trailsdk.AuthResponse{
		Token: token,
		User:  profileFromUser(user),
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
