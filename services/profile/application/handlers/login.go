package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
	pkgvalidator "github.com/Lslreddy/surplus-to-success/pkg/validator"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/profile/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"kitchen@example.org"`
	Password string `json:"password" validate:"required"`
} // @name LoginRequest

// LoginHandler handles POST /auth/login requests.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

func NewLoginHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *LoginHandler {
	return &LoginHandler{svc: svc, store: store, log: log}
}

// Execute verifies credentials and establishes a session.
//
//	@Summary		Login
//	@Description	Verifies email and password and establishes a session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	ProfileResponse
//	@Failure		400		{object}	ProfileErrorResponse
//	@Failure		401		{object}	ProfileErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	profile, err := h.svc.Profile.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.EstablishSession(w, r, h.store, profile.Actor()); err != nil {
		h.log.ErrorContext(r.Context(), "failed to establish session after login",
			"profile_id", profile.ID, "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "session could not be established")
		return
	}

	httpx.JSON(w, http.StatusOK, toProfileResponse(profile))
}

// LogoutHandler handles POST /auth/logout requests.
type LogoutHandler struct {
	store sessions.Store
}

func NewLogoutHandler(store sessions.Store) *LogoutHandler {
	return &LogoutHandler{store: store}
}

// Execute clears the actor's session.
//
//	@Summary		Logout
//	@Description	Clears the session cookie
//	@Tags			auth
//	@Produce		json
//	@Success		204
//	@Router			/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	_ = auth.ClearSession(w, r, h.store)
	httpx.NoContent(w)
}
