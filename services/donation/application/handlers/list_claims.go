package handlers

import (
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// ClaimListResponse wraps a page of claims.
type ClaimListResponse struct {
	Claims []ClaimResponse `json:"claims"`
} // @name ClaimListResponse

// ListMyClaimsHandler handles GET /claims/mine requests.
type ListMyClaimsHandler struct {
	svc *appsvcs.Services
}

func NewListMyClaimsHandler(svc *appsvcs.Services) *ListMyClaimsHandler {
	return &ListMyClaimsHandler{svc: svc}
}

// Execute returns the acting receiver's claims.
//
//	@Summary		List my claims
//	@Description	Returns the acting receiver's claims newest first
//	@Tags			claims
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ClaimListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/claims/mine [get]
func (h *ListMyClaimsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	claims, err := h.svc.Lifecycle.ListClaimsByClaimer(r.Context(), actor.ID, queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ClaimListResponse{Claims: toClaimResponses(claims)})
}

// ListAwaitingPickupHandler handles GET /deliveries/available requests.
type ListAwaitingPickupHandler struct {
	svc *appsvcs.Services
}

func NewListAwaitingPickupHandler(svc *appsvcs.Services) *ListAwaitingPickupHandler {
	return &ListAwaitingPickupHandler{svc: svc}
}

// Execute returns claimed donations awaiting a volunteer.
//
//	@Summary		List deliveries awaiting pickup
//	@Description	Returns claimed donations with no volunteer attached yet
//	@Tags			claims
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	DonationListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/deliveries/available [get]
func (h *ListAwaitingPickupHandler) Execute(w http.ResponseWriter, r *http.Request) {
	donations, err := h.svc.Lifecycle.ListAwaitingPickup(r.Context(), queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DonationListResponse{Donations: toDonationResponses(donations)})
}

// ListMyDeliveriesHandler handles GET /deliveries/mine requests.
type ListMyDeliveriesHandler struct {
	svc *appsvcs.Services
}

func NewListMyDeliveriesHandler(svc *appsvcs.Services) *ListMyDeliveriesHandler {
	return &ListMyDeliveriesHandler{svc: svc}
}

// Execute returns the deliveries the acting volunteer accepted.
//
//	@Summary		List my deliveries
//	@Description	Returns the acting volunteer's accepted deliveries newest first
//	@Tags			claims
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ClaimListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/deliveries/mine [get]
func (h *ListMyDeliveriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	claims, err := h.svc.Lifecycle.ListClaimsByVolunteer(r.Context(), actor.ID, queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ClaimListResponse{Claims: toClaimResponses(claims)})
}
