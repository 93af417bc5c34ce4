package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/database"
	profiledomain "github.com/Lslreddy/surplus-to-success/services/profile/domain"
	"github.com/Lslreddy/surplus-to-success/services/profile/domain/models"
)

const profileColumns = `id, email, full_name, role, phone_number, city, state,
	avatar_url, created_at, updated_at`

// ProfileRepository implements repositories.ProfileRepository against
// PostgreSQL. Password hashes live in a separate credentials table so list
// and get queries never carry them.
type ProfileRepository struct {
	db *database.Database
}

func NewProfileRepository(db *database.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create persists the profile and its credential hash in one transaction.
func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile, passwordHash []byte) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (id, email, full_name, role, phone_number, city, state,
				avatar_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.ID, p.Email, p.FullName, string(p.Role), p.PhoneNumber, p.City, p.State,
			p.AvatarURL, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err, "profiles_email_key") {
				return profiledomain.ErrEmailTaken
			}
			return fmt.Errorf("insert profile: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO profile_credentials (profile_id, password_hash, created_at)
			VALUES ($1, $2, $3)`,
			p.ID, passwordHash, p.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert credentials: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a profile. Returns ErrProfileNotFound if absent.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profiledomain.ErrProfileNotFound
		}
		return nil, database.WrapTransient(fmt.Errorf("query profile: %w", err))
	}
	return p, nil
}

// GetCredentials returns the profile and stored password hash for the email.
func (r *ProfileRepository) GetCredentials(ctx context.Context, email string) (*models.Profile, []byte, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	row := r.db.DB().QueryRowContext(ctx, `
		SELECT p.id, p.email, p.full_name, p.role, p.phone_number, p.city, p.state,
			p.avatar_url, p.created_at, p.updated_at, c.password_hash
		FROM profiles p
		JOIN profile_credentials c ON c.profile_id = p.id
		WHERE p.email = $1`, email)

	var p models.Profile
	var role string
	var hash []byte
	if err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &role, &p.PhoneNumber, &p.City, &p.State,
		&p.AvatarURL, &p.CreatedAt, &p.UpdatedAt, &hash,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, profiledomain.ErrProfileNotFound
		}
		return nil, nil, database.WrapTransient(fmt.Errorf("query credentials: %w", err))
	}

	parsed, err := auth.ParseRole(role)
	if err != nil {
		return nil, nil, err
	}
	p.Role = parsed
	return &p, hash, nil
}

// Update persists contact and location fields. Email and role are immutable
// here so the statement never writes them.
func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile) error {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE profiles
		SET full_name = $1, phone_number = $2, city = $3, state = $4,
			avatar_url = $5, updated_at = $6
		WHERE id = $7`,
		p.FullName, p.PhoneNumber, p.City, p.State, p.AvatarURL, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return database.WrapTransient(fmt.Errorf("update profile: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n == 0 {
		return profiledomain.ErrProfileNotFound
	}
	return nil
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var p models.Profile
	var role string
	if err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &role, &p.PhoneNumber, &p.City, &p.State,
		&p.AvatarURL, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := auth.ParseRole(role)
	if err != nil {
		return nil, err
	}
	p.Role = parsed
	return &p, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
