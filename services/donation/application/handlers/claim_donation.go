package handlers

import (
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	pkgvalidator "github.com/Lslreddy/surplus-to-success/pkg/validator"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// ClaimDonationRequest is the request body for POST /donations/{id}/claim.
type ClaimDonationRequest struct {
	Notes string `json:"notes" validate:"max=1000" example:"Can pick up after 5pm"`
} // @name ClaimDonationRequest

// ClaimDonationHandler handles POST /donations/{id}/claim requests.
type ClaimDonationHandler struct {
	svc *appsvcs.Services
}

func NewClaimDonationHandler(svc *appsvcs.Services) *ClaimDonationHandler {
	return &ClaimDonationHandler{svc: svc}
}

// Execute claims an available donation for the acting receiver.
//
//	@Summary		Claim donation
//	@Description	Claims an available donation; exactly one concurrent claimant wins
//	@Tags			donations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Donation ID"
//	@Param			request	body		ClaimDonationRequest	false	"Claim notes"
//	@Success		201		{object}	ClaimResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/donations/{id}/claim [post]
func (h *ClaimDonationHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	var notes string
	if r.ContentLength > 0 {
		req, ok := pkgvalidator.ValidateRequest[ClaimDonationRequest](w, r)
		if !ok {
			return
		}
		notes = req.Notes
	}

	claim, err := h.svc.Lifecycle.ClaimDonation(r.Context(), actor, donationID, notes)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toClaimResponse(claim))
}
