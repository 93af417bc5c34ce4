package handlers

import (
	"net/http"
	"time"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// ExpireDonationsResponse reports how many donations a sweep expired.
type ExpireDonationsResponse struct {
	Expired int `json:"expired" example:"3"`
} // @name ExpireDonationsResponse

// ExpireDonationsHandler handles POST /admin/donations/expire requests.
// The worker runs the same sweep on a schedule; this endpoint lets an
// admin force one between ticks.
type ExpireDonationsHandler struct {
	svc *appsvcs.Services
}

func NewExpireDonationsHandler(svc *appsvcs.Services) *ExpireDonationsHandler {
	return &ExpireDonationsHandler{svc: svc}
}

// Execute runs an immediate expiry sweep.
//
//	@Summary		Expire lapsed donations
//	@Description	Transitions every lapsed available or claimed donation to expired
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	ExpireDonationsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Router			/admin/donations/expire [post]
func (h *ExpireDonationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if !auth.Can(actor.Role, auth.ActionExpireSweep) {
		httpx.JSONError(w, http.StatusForbidden, "not authorized for this operation")
		return
	}

	n, err := h.svc.Lifecycle.ExpireDonations(r.Context(), time.Now().UTC())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ExpireDonationsResponse{Expired: n})
}
