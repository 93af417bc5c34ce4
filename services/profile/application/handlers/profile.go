package handlers

import (
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	pkgvalidator "github.com/Lslreddy/surplus-to-success/pkg/validator"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/profile/application/services"
)

// GetMyProfileHandler handles GET /profile/me requests.
type GetMyProfileHandler struct {
	svc *appsvcs.Services
}

func NewGetMyProfileHandler(svc *appsvcs.Services) *GetMyProfileHandler {
	return &GetMyProfileHandler{svc: svc}
}

// Execute returns the acting user's own profile.
//
//	@Summary		Get my profile
//	@Description	Returns the authenticated actor's profile
//	@Tags			profile
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	ProfileErrorResponse
//	@Router			/profile/me [get]
func (h *GetMyProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.svc.Profile.Get(r.Context(), actor.ID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfileRequest is the request body for PATCH /profile/me.
// Email and role are deliberately absent: neither can be changed here.
type UpdateProfileRequest struct {
	FullName    string `json:"full_name"    validate:"required,min=2,max=255"`
	PhoneNumber string `json:"phone_number" validate:"max=32"`
	City        string `json:"city"         validate:"max=128"`
	State       string `json:"state"        validate:"max=128"`
	AvatarURL   string `json:"avatar_url"   validate:"omitempty,url"`
} // @name UpdateProfileRequest

// UpdateMyProfileHandler handles PATCH /profile/me requests.
type UpdateMyProfileHandler struct {
	svc *appsvcs.Services
}

func NewUpdateMyProfileHandler(svc *appsvcs.Services) *UpdateMyProfileHandler {
	return &UpdateMyProfileHandler{svc: svc}
}

// Execute updates the acting user's contact and location fields.
//
//	@Summary		Update my profile
//	@Description	Updates contact and location fields; email and role are immutable
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"Profile changes"
//	@Success		200		{object}	ProfileResponse
//	@Failure		400		{object}	ProfileErrorResponse
//	@Failure		401		{object}	ProfileErrorResponse
//	@Failure		422		{object}	ProfileErrorResponse
//	@Router			/profile/me [patch]
func (h *UpdateMyProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	profile, err := h.svc.Profile.Update(r.Context(), actor, appsvcs.UpdateProfileInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		State:       req.State,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProfileResponse(profile))
}
