package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
)

// ClaimRepository is the persistence interface for the Claim aggregate and
// the multi-record lifecycle mutations that touch both a claim and its
// donation. Implementations must apply each mutation atomically: when the
// donation transition loses its race, the claim write must not survive.
type ClaimRepository interface {
	// ClaimDonation inserts claim and transitions its donation from
	// available to claimed as one unit, publishing DonationClaimedEvent.
	// Returns ErrDonationConflict when the donation is no longer available,
	// ErrDuplicateClaim when this receiver already holds a claim on it,
	// ErrDonationNotFound when the donation does not exist.
	ClaimDonation(ctx context.Context, claim *models.Claim) error

	// AttachVolunteer sets the volunteer reference on the donation's active
	// claim (first volunteer wins), stamps the pickup time, and transitions
	// the donation from claimed to in-transit, publishing
	// DeliveryAcceptedEvent. Returns ErrDonationConflict when another
	// volunteer attached first or the donation left the claimed state.
	AttachVolunteer(ctx context.Context, donationID, volunteerID uuid.UUID, pickupAt time.Time) (*models.Claim, error)

	// CompleteDelivery marks the claim and donation delivered and stamps the
	// delivery time, publishing DeliveryCompletedEvent. The caller verifies
	// the acting volunteer is the attached one; the conditional update here
	// guards against races all the same.
	CompleteDelivery(ctx context.Context, donationID, volunteerID uuid.UUID, deliveredAt time.Time) (*models.Claim, error)

	// GetActiveByDonation returns the donation's non-cancelled claim,
	// or ErrClaimNotFound when none exists.
	GetActiveByDonation(ctx context.Context, donationID uuid.UUID) (*models.Claim, error)

	// ListByClaimer returns a receiver's claims, newest first.
	ListByClaimer(ctx context.Context, claimerID uuid.UUID, opts QueryOpts) ([]*models.Claim, error)

	// ListByVolunteer returns a volunteer's accepted deliveries, newest first.
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, opts QueryOpts) ([]*models.Claim, error)
}
