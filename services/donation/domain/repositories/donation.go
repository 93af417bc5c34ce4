package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// DonationRepository is the persistence interface for the Donation aggregate.
// The domain layer owns this interface; infrastructure implements it.
type DonationRepository interface {
	// Create persists a new donation and publishes DonationPostedEvent
	// in the same transaction.
	Create(ctx context.Context, d *models.Donation) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Donation, error)

	// ListAvailable returns available donations not yet expired at now,
	// newest first. This is the feed receivers browse.
	ListAvailable(ctx context.Context, now time.Time, opts QueryOpts) ([]*models.Donation, error)

	// ListByDonor returns a donor's own donations, newest first.
	ListByDonor(ctx context.Context, donorID uuid.UUID, opts QueryOpts) ([]*models.Donation, error)

	// ListByStatus returns donations in the given status, newest first.
	// Volunteers browse status=claimed for deliveries awaiting pickup.
	ListByStatus(ctx context.Context, status models.DonationStatus, opts QueryOpts) ([]*models.Donation, error)

	// ExpireBefore transitions every donation in {available, claimed} whose
	// expiry timestamp is at or before now to expired, cancels any pending
	// claims on them, and publishes one DonationExpiredEvent per donation.
	// Returns the number of donations expired. Idempotent.
	ExpireBefore(ctx context.Context, now time.Time) (int, error)
}
