package handlers

import (
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// MarkDeliveredHandler handles POST /donations/{id}/delivered requests.
type MarkDeliveredHandler struct {
	svc *appsvcs.Services
}

func NewMarkDeliveredHandler(svc *appsvcs.Services) *MarkDeliveredHandler {
	return &MarkDeliveredHandler{svc: svc}
}

// Execute completes the delivery for the attached volunteer.
//
//	@Summary		Mark delivered
//	@Description	Marks an in-transit donation delivered; only the attached volunteer may call this
//	@Tags			donations
//	@Produce		json
//	@Param			id	path		string	true	"Donation ID"
//	@Success		200	{object}	ClaimResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/donations/{id}/delivered [post]
func (h *MarkDeliveredHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	claim, err := h.svc.Lifecycle.MarkDelivered(r.Context(), actor, donationID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toClaimResponse(claim))
}
