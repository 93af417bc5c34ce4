package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/repositories"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"donation state conflict"`
} // @name ErrorResponse

// DonationResponse is the wire representation of a donation.
type DonationResponse struct {
	ID                 uuid.UUID `json:"id"                  example:"123e4567-e89b-12d3-a456-426614174000"`
	DonorID            uuid.UUID `json:"donor_id"            example:"550e8400-e29b-41d4-a716-446655440000"`
	Title              string    `json:"title"               example:"Surplus sandwich trays"`
	Description        string    `json:"description,omitempty"`
	CategoryID         uuid.UUID `json:"category_id"`
	Quantity           int       `json:"quantity"            example:"12"`
	Unit               string    `json:"unit"                example:"trays"`
	Freshness          string    `json:"freshness"           example:"warm"`
	ExpiryTime         time.Time `json:"expiry_time"`
	PickupAddress      string    `json:"pickup_address"`
	PickupInstructions string    `json:"pickup_instructions,omitempty"`
	PhotoURL           string    `json:"photo_url,omitempty"`
	Status             string    `json:"status"              example:"available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
} // @name DonationResponse

// ClaimResponse is the wire representation of a claim.
type ClaimResponse struct {
	ID           uuid.UUID  `json:"id"`
	DonationID   uuid.UUID  `json:"donation_id"`
	ClaimerID    uuid.UUID  `json:"claimer_id"`
	VolunteerID  *uuid.UUID `json:"volunteer_id,omitempty"`
	Status       string     `json:"status"       example:"pending"`
	PickupTime   *time.Time `json:"pickup_time,omitempty"`
	DeliveryTime *time.Time `json:"delivery_time,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
} // @name ClaimResponse

func toDonationResponse(d *models.Donation) DonationResponse {
	return DonationResponse{
		ID:                 d.ID,
		DonorID:            d.DonorID,
		Title:              d.Title,
		Description:        d.Description,
		CategoryID:         d.CategoryID,
		Quantity:           d.Quantity,
		Unit:               d.Unit,
		Freshness:          d.Freshness.String(),
		ExpiryTime:         d.ExpiryTime,
		PickupAddress:      d.PickupAddress,
		PickupInstructions: d.PickupInstructions,
		PhotoURL:           d.PhotoURL,
		Status:             d.Status.String(),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func toDonationResponses(donations []*models.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, toDonationResponse(d))
	}
	return out
}

func toClaimResponse(c *models.Claim) ClaimResponse {
	return ClaimResponse{
		ID:           c.ID,
		DonationID:   c.DonationID,
		ClaimerID:    c.ClaimerID,
		VolunteerID:  c.VolunteerID,
		Status:       c.Status.String(),
		PickupTime:   c.PickupTime,
		DeliveryTime: c.DeliveryTime,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toClaimResponses(claims []*models.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, toClaimResponse(c))
	}
	return out
}

// donationIDFromURL parses the {id} chi route parameter.
func donationIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// queryOpts reads limit/offset query parameters with sane bounds.
func queryOpts(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: 50}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		opts.Limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}
