package handlers

import (
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// VolunteerForDeliveryHandler handles POST /donations/{id}/volunteer requests.
type VolunteerForDeliveryHandler struct {
	svc *appsvcs.Services
}

func NewVolunteerForDeliveryHandler(svc *appsvcs.Services) *VolunteerForDeliveryHandler {
	return &VolunteerForDeliveryHandler{svc: svc}
}

// Execute attaches the acting volunteer to the donation's claim.
//
//	@Summary		Volunteer for delivery
//	@Description	Attaches the acting volunteer to the donation's claim; the first volunteer wins
//	@Tags			donations
//	@Produce		json
//	@Param			id	path		string	true	"Donation ID"
//	@Success		200	{object}	ClaimResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/donations/{id}/volunteer [post]
func (h *VolunteerForDeliveryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	donationID, err := donationIDFromURL(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid donation id")
		return
	}

	claim, err := h.svc.Lifecycle.VolunteerForDelivery(r.Context(), actor, donationID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toClaimResponse(claim))
}
