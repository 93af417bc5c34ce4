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

// RegisterRequest is the request body for POST /auth/register.
// Role is chosen at registration and cannot be changed afterwards.
type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"                       example:"kitchen@example.org"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"               example:"Community Kitchen"`
	Role     string `json:"role"      validate:"required,oneof=donor ngo volunteer"   example:"donor"`
} // @name RegisterRequest

// RegisterHandler handles POST /auth/register requests.
type RegisterHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

func NewRegisterHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *RegisterHandler {
	return &RegisterHandler{svc: svc, store: store, log: log}
}

// Execute registers a new profile and establishes a session.
//
//	@Summary		Register
//	@Description	Creates a profile with the chosen role and logs the new actor in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration details"
//	@Success		201		{object}	ProfileResponse
//	@Failure		400		{object}	ProfileErrorResponse
//	@Failure		409		{object}	ProfileErrorResponse
//	@Failure		422		{object}	ProfileErrorResponse
//	@Router			/auth/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	role, err := auth.ParseRole(req.Role)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if role == auth.RoleAdmin {
		// Admin accounts are provisioned out of band, never self-registered.
		httpx.JSONError(w, http.StatusForbidden, "cannot self-register as admin")
		return
	}

	profile, err := h.svc.Profile.Register(r.Context(), req.Email, req.Password, req.FullName, role)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.EstablishSession(w, r, h.store, profile.Actor()); err != nil {
		h.log.ErrorContext(r.Context(), "failed to establish session after registration",
			"profile_id", profile.ID, "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "session could not be established")
		return
	}

	httpx.JSON(w, http.StatusCreated, toProfileResponse(profile))
}
