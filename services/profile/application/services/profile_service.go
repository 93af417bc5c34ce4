package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
	profiledomain "github.com/Lslreddy/surplus-to-success/services/profile/domain"
	"github.com/Lslreddy/surplus-to-success/services/profile/domain/models"
	"github.com/Lslreddy/surplus-to-success/services/profile/domain/repositories"
)

const minPasswordLength = 8

// UpdateProfileInput carries the mutable contact and location fields.
// Email and role are absent on purpose: both are immutable here.
type UpdateProfileInput struct {
	FullName    string
	PhoneNumber string
	City        string
	State       string
	AvatarURL   string
}

// ProfileService handles registration, login, and profile maintenance.
// Passwords are hashed with bcrypt before they reach the repository.
type ProfileService struct {
	repo repositories.ProfileRepository
	log  logger.Logger
}

func NewProfileService(repo repositories.ProfileRepository, log logger.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

// Register creates a profile with the chosen role and stores the bcrypt
// hash of the password. Returns ErrEmailTaken on a duplicate email.
func (s *ProfileService) Register(ctx context.Context, email, password, fullName string, role auth.Role) (*models.Profile, error) {
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", profiledomain.ErrInvalidProfile, minPasswordLength)
	}

	profile, err := models.NewProfile(email, fullName, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", profiledomain.ErrInvalidProfile, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Create(ctx, profile, hash); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile registered",
		"profile_id", profile.ID, "role", profile.Role)
	return profile, nil
}

// Login verifies the email and password. Lookup misses and hash mismatches
// both surface as ErrInvalidCredentials so the response does not reveal
// which emails are registered.
func (s *ProfileService) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	profile, hash, err := s.repo.GetCredentials(ctx, normalized)
	if err != nil {
		if errors.Is(err, profiledomain.ErrProfileNotFound) {
			return nil, profiledomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, profiledomain.ErrInvalidCredentials
	}
	return profile, nil
}

// Get retrieves a profile by ID.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies contact and location changes to the actor's own profile.
func (s *ProfileService) Update(ctx context.Context, actor auth.Actor, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(in.FullName)
	profile.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	profile.City = strings.TrimSpace(in.City)
	profile.State = strings.TrimSpace(in.State)
	profile.AvatarURL = strings.TrimSpace(in.AvatarURL)
	profile.UpdatedAt = time.Now().UTC()

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", profiledomain.ErrInvalidProfile, err)
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
