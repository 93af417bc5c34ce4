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

const donationColumns = `id, donor_id, title, description, food_category_id, quantity, unit,
	freshness, expiry_time, pickup_address, pickup_instructions, photo_url, status,
	created_at, updated_at`

// DonationRepository implements repositories.DonationRepository against PostgreSQL.
type DonationRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewDonationRepository returns a DonationRepository backed by the given pool
// and event bus. The bus publishes lifecycle events inside the mutating
// transactions; pass nil to disable publishing (tests).
func NewDonationRepository(db *database.Database, bus *events.EventBus) *DonationRepository {
	return &DonationRepository{db: db, bus: bus}
}

// Create persists a new donation and publishes DonationPostedEvent within
// the same transaction. Returns ErrCategoryNotFound when the category
// reference violates the foreign key.
func (r *DonationRepository) Create(ctx context.Context, d *models.Donation) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO donations (id, donor_id, title, description, food_category_id,
				quantity, unit, freshness, expiry_time, pickup_address,
				pickup_instructions, photo_url, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			d.ID, d.DonorID, d.Title, d.Description, d.CategoryID,
			d.Quantity, d.Unit, d.Freshness.String(), d.ExpiryTime, d.PickupAddress,
			d.PickupInstructions, d.PhotoURL, d.Status.String(), d.CreatedAt, d.UpdatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err, "donations_food_category_id_fkey") {
				return donationdomain.ErrCategoryNotFound
			}
			return fmt.Errorf("insert donation: %w", err)
		}

		return publishTx(tx, r.bus, domainevents.TopicDonationPosted, domainevents.DonationPostedEvent{
			EventID:    uuid.New(),
			Version:    1,
			DonationID: d.ID,
			DonorID:    d.DonorID,
			Title:      d.Title,
			CategoryID: d.CategoryID,
			ExpiryTime: d.ExpiryTime,
			OccurredAt: d.CreatedAt,
		})
	})
}

// GetByID retrieves a donation. Returns ErrDonationNotFound if absent.
func (r *DonationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Donation, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+donationColumns+` FROM donations WHERE id = $1`, id)
	d, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donationdomain.ErrDonationNotFound
		}
		return nil, database.WrapTransient(fmt.Errorf("query donation: %w", err))
	}
	return d, nil
}

// ListAvailable returns available donations whose expiry is still ahead of
// now, newest first.
func (r *DonationRepository) ListAvailable(ctx context.Context, now time.Time, opts repositories.QueryOpts) ([]*models.Donation, error) {
	return r.list(ctx, `
		SELECT `+donationColumns+` FROM donations
		WHERE status = 'available' AND expiry_time > $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		now, limitOrDefault(opts.Limit), opts.Offset)
}

// ListByDonor returns a donor's own donations, newest first.
func (r *DonationRepository) ListByDonor(ctx context.Context, donorID uuid.UUID, opts repositories.QueryOpts) ([]*models.Donation, error) {
	return r.list(ctx, `
		SELECT `+donationColumns+` FROM donations
		WHERE donor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		donorID, limitOrDefault(opts.Limit), opts.Offset)
}

// ListByStatus returns donations in the given status, newest first.
func (r *DonationRepository) ListByStatus(ctx context.Context, status models.DonationStatus, opts repositories.QueryOpts) ([]*models.Donation, error) {
	return r.list(ctx, `
		SELECT `+donationColumns+` FROM donations
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		status.String(), limitOrDefault(opts.Limit), opts.Offset)
}

// ExpireBefore transitions lapsed donations to expired, cancels their
// pending claims, and publishes one DonationExpiredEvent per donation.
// The conditional WHERE makes re-runs no-ops, and in-transit or delivered
// donations are never touched.
func (r *DonationRepository) ExpireBefore(ctx context.Context, now time.Time) (int, error) {
	var expired []uuid.UUID

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			UPDATE donations
			SET status = 'expired', updated_at = $1
			WHERE status IN ('available', 'claimed') AND expiry_time <= $1
			RETURNING id`, now.UTC())
		if err != nil {
			return fmt.Errorf("expire donations: %w", err)
		}
		defer rows.Close() //nolint:errcheck

		for rows.Next() {
			var id uuid.UUID
			if err := rows.Scan(&id); err != nil {
				return fmt.Errorf("scan expired id: %w", err)
			}
			expired = append(expired, id)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate expired ids: %w", err)
		}

		for _, id := range expired {
			if _, err := tx.ExecContext(ctx, `
				UPDATE donation_claims
				SET status = 'cancelled', updated_at = $1
				WHERE donation_id = $2 AND status = 'pending'`, now.UTC(), id); err != nil {
				return fmt.Errorf("cancel pending claim for %s: %w", id, err)
			}

			if err := publishTx(tx, r.bus, domainevents.TopicDonationExpired, domainevents.DonationExpiredEvent{
				EventID:    uuid.New(),
				Version:    1,
				DonationID: id,
				OccurredAt: now.UTC(),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(expired), nil
}

func (r *DonationRepository) list(ctx context.Context, query string, args ...any) ([]*models.Donation, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapTransient(fmt.Errorf("query donations: %w", err))
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapTransient(fmt.Errorf("iterate donations: %w", err))
	}
	return out, nil
}

// scanner is the subset of sql.Row/sql.Rows used by the scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanDonation(s scanner) (*models.Donation, error) {
	var d models.Donation
	var freshness, status string
	if err := s.Scan(
		&d.ID, &d.DonorID, &d.Title, &d.Description, &d.CategoryID, &d.Quantity, &d.Unit,
		&freshness, &d.ExpiryTime, &d.PickupAddress, &d.PickupInstructions, &d.PhotoURL, &status,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	f, err := models.ParseFreshness(freshness)
	if err != nil {
		return nil, err
	}
	st, err := models.ParseDonationStatus(status)
	if err != nil {
		return nil, err
	}
	d.Freshness = f
	d.Status = st
	return &d, nil
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}
