package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/pkg/database"
	"github.com/Lslreddy/surplus-to-success/pkg/events"
	donationdomain "github.com/Lslreddy/surplus-to-success/services/donation/domain"
	domainevents "github.com/Lslreddy/surplus-to-success/services/donation/domain/events"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/repositories"
)

const claimColumns = `id, donation_id, claimer_id, volunteer_id, status,
	pickup_time, delivery_time, notes, created_at, updated_at`

// ClaimRepository implements repositories.ClaimRepository against PostgreSQL.
//
// Race arbitration relies on conditional UPDATEs: each lifecycle transition
// carries its precondition in the WHERE clause, so of N concurrent callers
// exactly one sees RowsAffected == 1 and every loser gets a conflict. The
// partial unique index on donation_claims(donation_id) WHERE status !=
// 'cancelled' backstops the one-active-claim invariant at the schema level.
type ClaimRepository struct {
	db  *database.Database
	bus *events.EventBus
}

func NewClaimRepository(db *database.Database, bus *events.EventBus) *ClaimRepository {
	return &ClaimRepository{db: db, bus: bus}
}

// ClaimDonation inserts the claim and transitions the donation from
// available to claimed in one transaction. If the donation transition finds
// zero rows the whole transaction rolls back, so no orphaned claim survives
// a lost race.
func (r *ClaimRepository) ClaimDonation(ctx context.Context, claim *models.Claim) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO donation_claims (id, donation_id, claimer_id, status, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			claim.ID, claim.DonationID, claim.ClaimerID, claim.Status.String(),
			claim.Notes, claim.CreatedAt, claim.UpdatedAt,
		)
		if err != nil {
			switch {
			case isUniqueViolation(err, "donation_claims_donation_claimer_key"):
				return donationdomain.ErrDuplicateClaim
			case isUniqueViolation(err, "donation_claims_active_donation_idx"):
				return donationdomain.ErrDonationConflict
			case isForeignKeyViolation(err, "donation_claims_donation_id_fkey"):
				return donationdomain.ErrDonationNotFound
			}
			return fmt.Errorf("insert claim: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE donations
			SET status = 'claimed', updated_at = $1
			WHERE id = $2 AND status = 'available'`,
			claim.UpdatedAt, claim.DonationID,
		)
		if err != nil {
			return fmt.Errorf("transition donation to claimed: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("transition donation to claimed: %w", err)
		}
		if n == 0 {
			return r.claimFailureReason(ctx, tx, claim)
		}

		return publishTx(tx, r.bus, domainevents.TopicDonationClaimed, domainevents.DonationClaimedEvent{
			EventID:    uuid.New(),
			Version:    1,
			DonationID: claim.DonationID,
			ClaimID:    claim.ID,
			ClaimerID:  claim.ClaimerID,
			OccurredAt: claim.CreatedAt,
		})
	})
}

// claimFailureReason distinguishes why the donation transition matched no
// rows. The returned error aborts the transaction either way.
func (r *ClaimRepository) claimFailureReason(ctx context.Context, tx *sql.Tx, claim *models.Claim) error {
	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM donations WHERE id = $1)`, claim.DonationID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check donation existence: %w", err)
	}
	if !exists {
		return donationdomain.ErrDonationNotFound
	}

	var alreadyClaimed bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM donation_claims
			WHERE donation_id = $1 AND claimer_id = $2 AND status != 'cancelled' AND id != $3
		)`, claim.DonationID, claim.ClaimerID, claim.ID,
	).Scan(&alreadyClaimed); err != nil {
		return fmt.Errorf("check duplicate claim: %w", err)
	}
	if alreadyClaimed {
		return donationdomain.ErrDuplicateClaim
	}
	return donationdomain.ErrDonationConflict
}

// AttachVolunteer binds the first accepting volunteer to the donation's
// pending claim and moves the donation to in-transit. The volunteer_id IS
// NULL guard is the tie-break: a second volunteer updates zero rows.
func (r *ClaimRepository) AttachVolunteer(ctx context.Context, donationID, volunteerID uuid.UUID, pickupAt time.Time) (*models.Claim, error) {
	var claim *models.Claim

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE donation_claims
			SET volunteer_id = $1, status = 'picked-up', pickup_time = $2, updated_at = $2
			WHERE donation_id = $3 AND status = 'pending' AND volunteer_id IS NULL
			RETURNING `+claimColumns,
			volunteerID, pickupAt.UTC(), donationID,
		)
		c, err := scanClaim(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return donationdomain.ErrDonationConflict
			}
			return fmt.Errorf("attach volunteer: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE donations
			SET status = 'in-transit', updated_at = $1
			WHERE id = $2 AND status = 'claimed'`,
			pickupAt.UTC(), donationID,
		)
		if err != nil {
			return fmt.Errorf("transition donation to in-transit: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("transition donation to in-transit: %w", err)
		} else if n == 0 {
			return donationdomain.ErrDonationConflict
		}

		claim = c
		return publishTx(tx, r.bus, domainevents.TopicDeliveryAccepted, domainevents.DeliveryAcceptedEvent{
			EventID:     uuid.New(),
			Version:     1,
			DonationID:  donationID,
			ClaimID:     c.ID,
			VolunteerID: volunteerID,
			OccurredAt:  pickupAt.UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// CompleteDelivery marks the attached volunteer's claim delivered and
// finishes the donation lifecycle.
func (r *ClaimRepository) CompleteDelivery(ctx context.Context, donationID, volunteerID uuid.UUID, deliveredAt time.Time) (*models.Claim, error) {
	var claim *models.Claim

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE donation_claims
			SET status = 'delivered', delivery_time = $1, updated_at = $1
			WHERE donation_id = $2 AND volunteer_id = $3 AND status = 'picked-up'
			RETURNING `+claimColumns,
			deliveredAt.UTC(), donationID, volunteerID,
		)
		c, err := scanClaim(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return donationdomain.ErrDonationConflict
			}
			return fmt.Errorf("complete delivery: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE donations
			SET status = 'delivered', updated_at = $1
			WHERE id = $2 AND status = 'in-transit'`,
			deliveredAt.UTC(), donationID,
		)
		if err != nil {
			return fmt.Errorf("transition donation to delivered: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("transition donation to delivered: %w", err)
		} else if n == 0 {
			return donationdomain.ErrDonationConflict
		}

		claim = c
		return publishTx(tx, r.bus, domainevents.TopicDeliveryCompleted, domainevents.DeliveryCompletedEvent{
			EventID:     uuid.New(),
			Version:     1,
			DonationID:  donationID,
			ClaimID:     c.ID,
			VolunteerID: volunteerID,
			DeliveredAt: deliveredAt.UTC(),
			OccurredAt:  deliveredAt.UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// GetActiveByDonation returns the donation's non-cancelled claim.
func (r *ClaimRepository) GetActiveByDonation(ctx context.Context, donationID uuid.UUID) (*models.Claim, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+claimColumns+` FROM donation_claims
		WHERE donation_id = $1 AND status != 'cancelled'`, donationID)
	c, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donationdomain.ErrClaimNotFound
		}
		return nil, database.WrapTransient(fmt.Errorf("query active claim: %w", err))
	}
	return c, nil
}

func (r *ClaimRepository) ListByClaimer(ctx context.Context, claimerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Claim, error) {
	return r.list(ctx, `
		SELECT `+claimColumns+` FROM donation_claims
		WHERE claimer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		claimerID, limitOrDefault(opts.Limit), opts.Offset)
}

func (r *ClaimRepository) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Claim, error) {
	return r.list(ctx, `
		SELECT `+claimColumns+` FROM donation_claims
		WHERE volunteer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		volunteerID, limitOrDefault(opts.Limit), opts.Offset)
}

func (r *ClaimRepository) list(ctx context.Context, query string, args ...any) ([]*models.Claim, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapTransient(fmt.Errorf("query claims: %w", err))
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Claim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapTransient(fmt.Errorf("iterate claims: %w", err))
	}
	return out, nil
}

func scanClaim(s scanner) (*models.Claim, error) {
	var c models.Claim
	var status string
	var volunteerID uuid.NullUUID
	var pickup, delivery sql.NullTime
	if err := s.Scan(
		&c.ID, &c.DonationID, &c.ClaimerID, &volunteerID, &status,
		&pickup, &delivery, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	st, err := models.ParseClaimStatus(status)
	if err != nil {
		return nil, err
	}
	c.Status = st
	if volunteerID.Valid {
		v := volunteerID.UUID
		c.VolunteerID = &v
	}
	if pickup.Valid {
		t := pickup.Time
		c.PickupTime = &t
	}
	if delivery.Valid {
		t := delivery.Time
		c.DeliveryTime = &t
	}
	return &c, nil
}
