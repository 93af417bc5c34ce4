package models

import (
	"time"

	"github.com/google/uuid"
)

// Claim is one receiver's request against a specific donation. At most one
// active (non-cancelled) claim exists per donation; the volunteer reference
// is set at most once, by the first volunteer to accept the delivery.
type Claim struct {
	ID           uuid.UUID
	DonationID   uuid.UUID
	ClaimerID    uuid.UUID
	VolunteerID  *uuid.UUID
	Status       ClaimStatus
	PickupTime   *time.Time
	DeliveryTime *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewClaim constructs a pending Claim for the given donation and receiver.
func NewClaim(donationID, claimerID uuid.UUID, notes string) *Claim {
	now := time.Now().UTC()
	return &Claim{
		ID:         uuid.New(),
		DonationID: donationID,
		ClaimerID:  claimerID,
		Status:     ClaimPending,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HasVolunteer reports whether a volunteer already accepted this delivery.
func (c *Claim) HasVolunteer() bool {
	return c.VolunteerID != nil
}
