package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/services/profile/domain/models"
)

// ProfileRepository is the persistence interface for profiles and their
// credentials. Password hashes never leave the repository except through
// GetCredentials for login verification.
type ProfileRepository interface {
	// Create persists a new profile with its credential hash.
	// Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, p *models.Profile, passwordHash []byte) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// GetCredentials returns the profile and stored password hash for the
	// email, or ErrProfileNotFound.
	GetCredentials(ctx context.Context, email string) (*models.Profile, []byte, error)

	// Update persists contact and location changes. Role and email are not
	// touched by this operation.
	Update(ctx context.Context, p *models.Profile) error
}
