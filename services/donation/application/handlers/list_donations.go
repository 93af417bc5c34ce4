package handlers

import (
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// DonationListResponse wraps a page of donations.
type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
} // @name DonationListResponse

// ListAvailableDonationsHandler handles GET /donations requests.
type ListAvailableDonationsHandler struct {
	svc *appsvcs.Services
}

func NewListAvailableDonationsHandler(svc *appsvcs.Services) *ListAvailableDonationsHandler {
	return &ListAvailableDonationsHandler{svc: svc}
}

// Execute returns the feed of claimable donations.
//
//	@Summary		List available donations
//	@Description	Returns available, unexpired donations newest first
//	@Tags			donations
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	DonationListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/donations [get]
func (h *ListAvailableDonationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	donations, err := h.svc.Lifecycle.ListAvailable(r.Context(), queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DonationListResponse{Donations: toDonationResponses(donations)})
}

// ListMyDonationsHandler handles GET /donations/mine requests.
type ListMyDonationsHandler struct {
	svc *appsvcs.Services
}

func NewListMyDonationsHandler(svc *appsvcs.Services) *ListMyDonationsHandler {
	return &ListMyDonationsHandler{svc: svc}
}

// Execute returns the acting donor's own donations in every status.
//
//	@Summary		List my donations
//	@Description	Returns the acting donor's donations newest first
//	@Tags			donations
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	DonationListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/donations/mine [get]
func (h *ListMyDonationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	donations, err := h.svc.Lifecycle.ListByDonor(r.Context(), actor.ID, queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DonationListResponse{Donations: toDonationResponses(donations)})
}
