package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation is the core aggregate of the lifecycle: one unit of surplus food
// offered by a donor. Donations are never deleted in the normal flow;
// expiry is a status transition, not a deletion.
type Donation struct {
	ID                 uuid.UUID
	DonorID            uuid.UUID
	Title              string
	Description        string
	CategoryID         uuid.UUID
	Quantity           int
	Unit               string
	Freshness          Freshness
	ExpiryTime         time.Time
	PickupAddress      string
	PickupInstructions string
	PhotoURL           string
	Status             DonationStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewDonationInput carries the donor-supplied fields for a new donation.
type NewDonationInput struct {
	Title              string
	Description        string
	CategoryID         uuid.UUID
	Quantity           int
	Unit               string
	Freshness          Freshness
	ExpiryTime         time.Time
	PickupAddress      string
	PickupInstructions string
	PhotoURL           string
}

// NewDonation constructs a Donation in the available state with generated ID
// and current timestamps. Field constraints are enforced separately by
// services.ValidateDonation before persisting.
func NewDonation(donorID uuid.UUID, in NewDonationInput) *Donation {
	now := time.Now().UTC()
	return &Donation{
		ID:                 uuid.New(),
		DonorID:            donorID,
		Title:              in.Title,
		Description:        in.Description,
		CategoryID:         in.CategoryID,
		Quantity:           in.Quantity,
		Unit:               in.Unit,
		Freshness:          in.Freshness,
		ExpiryTime:         in.ExpiryTime.UTC(),
		PickupAddress:      in.PickupAddress,
		PickupInstructions: in.PickupInstructions,
		PhotoURL:           in.PhotoURL,
		Status:             DonationAvailable,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Expired reports whether the donation's expiry timestamp has passed at now.
func (d *Donation) Expired(now time.Time) bool {
	return !d.ExpiryTime.After(now)
}
