package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	pkgcache "github.com/Lslreddy/surplus-to-success/pkg/cache"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
	donationdomain "github.com/Lslreddy/surplus-to-success/services/donation/domain"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/repositories"
	domainsvcs "github.com/Lslreddy/surplus-to-success/services/donation/domain/services"
)

// EscalationScheduler starts a durable timer when a delivery begins, so a
// donation stuck in transit past its deadline raises a stalled event.
// A nil scheduler disables escalations.
type EscalationScheduler interface {
	ScheduleEscalation(ctx context.Context, donationID uuid.UUID, pickedUpAt time.Time) error
}

// LifecycleService orchestrates the donation lifecycle: post, claim,
// volunteer, deliver, expire. Role checks happen here against the shared
// permission table; race arbitration happens below, in the repository's
// conditional updates. Event publishing is handled by the repository layer
// inside the mutating transactions.
type LifecycleService struct {
	donations   repositories.DonationRepository
	claims      repositories.ClaimRepository
	categories  repositories.CategoryRepository
	cache       *pkgcache.DonationCache
	escalations EscalationScheduler
	log         logger.Logger
	now         func() time.Time
}

// NewLifecycleService returns a LifecycleService wired with the given
// repositories. cache and escalations may be nil.
func NewLifecycleService(
	donations repositories.DonationRepository,
	claims repositories.ClaimRepository,
	categories repositories.CategoryRepository,
	donationCache *pkgcache.DonationCache,
	escalations EscalationScheduler,
	log logger.Logger,
) *LifecycleService {
	return &LifecycleService{
		donations:   donations,
		claims:      claims,
		categories:  categories,
		cache:       donationCache,
		escalations: escalations,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// PostDonation validates and persists a donor's new donation.
// Nothing is persisted when any validation fails.
func (s *LifecycleService) PostDonation(ctx context.Context, actor auth.Actor, in models.NewDonationInput) (*models.Donation, error) {
	if !auth.Can(actor.Role, auth.ActionPostDonation) {
		return nil, fmt.Errorf("%w: role %s cannot post donations", donationdomain.ErrNotAuthorized, actor.Role)
	}

	if err := domainsvcs.ValidateExpiry(in.ExpiryTime, s.now()); err != nil {
		return nil, fmt.Errorf("%w: %w", donationdomain.ErrInvalidDonation, err)
	}

	exists, err := s.categories.Exists(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: category %s does not exist", donationdomain.ErrInvalidDonation, in.CategoryID)
	}

	donation := models.NewDonation(actor.ID, in)
	if err := domainsvcs.ValidateDonation(donation); err != nil {
		return nil, fmt.Errorf("%w: %w", donationdomain.ErrInvalidDonation, err)
	}

	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("save donation: %w", err)
	}

	s.log.InfoContext(ctx, "donation posted",
		"donation_id", donation.ID, "donor_id", actor.ID, "expiry_time", donation.ExpiryTime)
	return donation, nil
}

// ClaimDonation races the receiver against all other claimants. Exactly one
// concurrent caller wins; losers get ErrDonationConflict. A donation whose
// expiry has lapsed but which the sweep has not yet caught is treated as
// gone, not available.
func (s *LifecycleService) ClaimDonation(ctx context.Context, actor auth.Actor, donationID uuid.UUID, notes string) (*models.Claim, error) {
	if !auth.Can(actor.Role, auth.ActionClaimDonation) {
		return nil, fmt.Errorf("%w: role %s cannot claim donations", donationdomain.ErrNotAuthorized, actor.Role)
	}

	donation, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation.Expired(s.now()) {
		return nil, fmt.Errorf("%w: donation expired", donationdomain.ErrDonationConflict)
	}

	claim := models.NewClaim(donationID, actor.ID, notes)
	if err := s.claims.ClaimDonation(ctx, claim); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, donationID)
	s.log.InfoContext(ctx, "donation claimed",
		"donation_id", donationID, "claim_id", claim.ID, "claimer_id", actor.ID)
	return claim, nil
}

// VolunteerForDelivery attaches the acting volunteer to the donation's
// pending claim. The first volunteer wins; the pickup timestamp is stamped
// on acceptance. On success a durable escalation timer starts so a delivery
// stuck in transit gets flagged.
func (s *LifecycleService) VolunteerForDelivery(ctx context.Context, actor auth.Actor, donationID uuid.UUID) (*models.Claim, error) {
	if !auth.Can(actor.Role, auth.ActionVolunteer) {
		return nil, fmt.Errorf("%w: role %s cannot volunteer for deliveries", donationdomain.ErrNotAuthorized, actor.Role)
	}

	pickupAt := s.now()
	claim, err := s.claims.AttachVolunteer(ctx, donationID, actor.ID, pickupAt)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, donationID)

	if s.escalations != nil {
		if err := s.escalations.ScheduleEscalation(ctx, donationID, pickupAt); err != nil {
			// The delivery proceeds either way; losing the escalation timer
			// is not worth failing the volunteer's accept.
			s.log.ErrorContext(ctx, "failed to schedule delivery escalation",
				"donation_id", donationID, "error", err)
		}
	}

	s.log.InfoContext(ctx, "delivery accepted",
		"donation_id", donationID, "claim_id", claim.ID, "volunteer_id", actor.ID)
	return claim, nil
}

// MarkDelivered completes the lifecycle. Only the volunteer attached to the
// claim may call it; any other volunteer gets ErrNotAuthorized even though
// their role would otherwise permit the action.
func (s *LifecycleService) MarkDelivered(ctx context.Context, actor auth.Actor, donationID uuid.UUID) (*models.Claim, error) {
	if !auth.Can(actor.Role, auth.ActionMarkDelivered) {
		return nil, fmt.Errorf("%w: role %s cannot mark deliveries complete", donationdomain.ErrNotAuthorized, actor.Role)
	}

	active, err := s.claims.GetActiveByDonation(ctx, donationID)
	if err != nil {
		if errors.Is(err, donationdomain.ErrClaimNotFound) {
			return nil, fmt.Errorf("%w: donation has no active claim", donationdomain.ErrDonationConflict)
		}
		return nil, err
	}
	if !active.HasVolunteer() {
		return nil, fmt.Errorf("%w: no volunteer attached yet", donationdomain.ErrDonationConflict)
	}
	if *active.VolunteerID != actor.ID {
		return nil, fmt.Errorf("%w: delivery belongs to another volunteer", donationdomain.ErrNotAuthorized)
	}

	claim, err := s.claims.CompleteDelivery(ctx, donationID, actor.ID, s.now())
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, donationID)
	s.log.InfoContext(ctx, "delivery completed",
		"donation_id", donationID, "claim_id", claim.ID, "volunteer_id", actor.ID)
	return claim, nil
}

// ExpireDonations sweeps every lapsed available or claimed donation into the
// expired state and cancels their pending claims. Idempotent: a second sweep
// over the same instant expires nothing.
func (s *LifecycleService) ExpireDonations(ctx context.Context, now time.Time) (int, error) {
	n, err := s.donations.ExpireBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expire donations: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired lapsed donations", "count", n)
	}
	return n, nil
}

// GetDonation retrieves a single donation with a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *LifecycleService) GetDonation(ctx context.Context, id uuid.UUID) (*models.Donation, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			if d, err := donationFromCache(cached); err == nil {
				return d, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "donation cache read failed", "donation_id", id, "error", err)
		}
	}

	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), donationToCache(donation))
		}()
	}
	return donation, nil
}

// GetDonationWithClaim returns the donation plus its active claim, or a nil
// claim when none exists.
func (s *LifecycleService) GetDonationWithClaim(ctx context.Context, id uuid.UUID) (*models.Donation, *models.Claim, error) {
	donation, err := s.GetDonation(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	claim, err := s.claims.GetActiveByDonation(ctx, id)
	if err != nil {
		if errors.Is(err, donationdomain.ErrClaimNotFound) {
			return donation, nil, nil
		}
		return nil, nil, err
	}
	return donation, claim, nil
}

// ListAvailable returns the open donation feed receivers browse.
func (s *LifecycleService) ListAvailable(ctx context.Context, opts repositories.QueryOpts) ([]*models.Donation, error) {
	return s.donations.ListAvailable(ctx, s.now(), opts)
}

// ListAwaitingPickup returns claimed donations that have no volunteer yet,
// the feed volunteers browse for deliveries to accept.
func (s *LifecycleService) ListAwaitingPickup(ctx context.Context, opts repositories.QueryOpts) ([]*models.Donation, error) {
	return s.donations.ListByStatus(ctx, models.DonationClaimed, opts)
}

// ListByDonor returns the acting donor's own donations, any status.
func (s *LifecycleService) ListByDonor(ctx context.Context, donorID uuid.UUID, opts repositories.QueryOpts) ([]*models.Donation, error) {
	return s.donations.ListByDonor(ctx, donorID, opts)
}

// ListClaimsByClaimer returns a receiver's claims, newest first.
func (s *LifecycleService) ListClaimsByClaimer(ctx context.Context, claimerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Claim, error) {
	return s.claims.ListByClaimer(ctx, claimerID, opts)
}

// ListClaimsByVolunteer returns a volunteer's accepted deliveries.
func (s *LifecycleService) ListClaimsByVolunteer(ctx context.Context, volunteerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Claim, error) {
	return s.claims.ListByVolunteer(ctx, volunteerID, opts)
}

func (s *LifecycleService) invalidateCache(ctx context.Context, donationID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.WithoutCancel(ctx), donationID); err != nil {
		s.log.WarnContext(ctx, "donation cache invalidation failed",
			"donation_id", donationID, "error", err)
	}
}

func donationToCache(d *models.Donation) *pkgcache.CachedDonation {
	return &pkgcache.CachedDonation{
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

func donationFromCache(c *pkgcache.CachedDonation) (*models.Donation, error) {
	freshness, err := models.ParseFreshness(c.Freshness)
	if err != nil {
		return nil, err
	}
	status, err := models.ParseDonationStatus(c.Status)
	if err != nil {
		return nil, err
	}
	return &models.Donation{
		ID:                 c.ID,
		DonorID:            c.DonorID,
		Title:              c.Title,
		Description:        c.Description,
		CategoryID:         c.CategoryID,
		Quantity:           c.Quantity,
		Unit:               c.Unit,
		Freshness:          freshness,
		ExpiryTime:         c.ExpiryTime,
		PickupAddress:      c.PickupAddress,
		PickupInstructions: c.PickupInstructions,
		PhotoURL:           c.PhotoURL,
		Status:             status,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}, nil
}
