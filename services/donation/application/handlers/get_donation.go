package handlers

import (
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// DonationDetailResponse is the donation plus its active claim when one exists.
type DonationDetailResponse struct {
	Donation DonationResponse `json:"donation"`
	Claim    *ClaimResponse   `json:"claim,omitempty"`
} // @name DonationDetailResponse

// GetDonationHandler handles GET /donations/{id} requests.
type GetDonationHandler struct {
	svc *appsvcs.Services
}

func NewGetDonationHandler(svc *appsvcs.Services) *GetDonationHandler {
	return &GetDonationHandler{svc: svc}
}

// Execute returns one donation with its active claim.
//
//	@Summary		Get donation
//	@Description	Returns the donation and, when present, its active claim
//	@Tags			donations
//	@Produce		json
//	@Param			id	path		string	true	"Donation ID"
//	@Success		200	{object}	DonationDetailResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/donations/{id} [get]
func (h *GetDonationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	donationID, err := donationIDFromURL(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid donation id")
		return
	}

	donation, claim, err := h.svc.Lifecycle.GetDonationWithClaim(r.Context(), donationID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := DonationDetailResponse{Donation: toDonationResponse(donation)}
	if claim != nil {
		c := toClaimResponse(claim)
		resp.Claim = &c
	}
	httpx.JSON(w, http.StatusOK, resp)
}
