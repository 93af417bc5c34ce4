package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	pkgvalidator "github.com/Lslreddy/surplus-to-success/pkg/validator"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
)

// PostDonationRequest is the request body for POST /donations.
type PostDonationRequest struct {
	Title              string    `json:"title"               validate:"required,min=3,max=255"  example:"Surplus sandwich trays"`
	Description        string    `json:"description"         validate:"max=2000"`
	CategoryID         uuid.UUID `json:"category_id"         validate:"required"`
	Quantity           int       `json:"quantity"            validate:"required,gt=0"           example:"12"`
	Unit               string    `json:"unit"                validate:"required,min=1,max=50"   example:"trays"`
	Freshness          string    `json:"freshness"           validate:"required,oneof=hot warm cold" example:"warm"`
	ExpiryTime         time.Time `json:"expiry_time"         validate:"required"`
	PickupAddress      string    `json:"pickup_address"      validate:"required,min=3,max=500"`
	PickupInstructions string    `json:"pickup_instructions" validate:"max=1000"`
	PhotoURL           string    `json:"photo_url"           validate:"omitempty,url"`
} // @name PostDonationRequest

// PostDonationHandler handles POST /donations requests.
type PostDonationHandler struct {
	svc *appsvcs.Services
}

func NewPostDonationHandler(svc *appsvcs.Services) *PostDonationHandler {
	return &PostDonationHandler{svc: svc}
}

// Execute posts a new donation.
//
//	@Summary		Post donation
//	@Description	Creates a new available donation owned by the acting donor
//	@Tags			donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PostDonationRequest	true	"Donation details"
//	@Success		201		{object}	DonationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/donations [post]
func (h *PostDonationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PostDonationRequest](w, r)
	if !ok {
		return
	}

	freshness, err := models.ParseFreshness(req.Freshness)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	donation, err := h.svc.Lifecycle.PostDonation(r.Context(), actor, models.NewDonationInput{
		Title:              req.Title,
		Description:        req.Description,
		CategoryID:         req.CategoryID,
		Quantity:           req.Quantity,
		Unit:               req.Unit,
		Freshness:          freshness,
		ExpiryTime:         req.ExpiryTime,
		PickupAddress:      req.PickupAddress,
		PickupInstructions: req.PickupInstructions,
		PhotoURL:           req.PhotoURL,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toDonationResponse(donation))
}
