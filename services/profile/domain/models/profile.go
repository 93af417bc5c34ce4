package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
)

// Profile is the per-actor record sharing the authenticated identity space.
// Role is assigned at registration and immutable through user-facing
// operations; changing it requires out-of-band administrative action.
type Profile struct {
	ID          uuid.UUID
	Email       string
	FullName    string
	Role        auth.Role
	PhoneNumber string
	City        string
	State       string
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProfile constructs a Profile with generated ID and current timestamps.
func NewProfile(email, fullName string, role auth.Role) (*Profile, error) {
	p := &Profile{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FullName:  strings.TrimSpace(fullName),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	p.UpdatedAt = p.CreatedAt
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces profile field constraints.
func (p *Profile) Validate() error {
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return fmt.Errorf("email %q is not valid", p.Email)
	}
	if p.FullName == "" {
		return fmt.Errorf("full name must not be empty")
	}
	if len(p.FullName) > 255 {
		return fmt.Errorf("full name must not exceed 255 characters")
	}
	if _, err := auth.ParseRole(string(p.Role)); err != nil {
		return err
	}
	return nil
}

// Actor converts the profile to the identity value lifecycle operations take.
func (p *Profile) Actor() auth.Actor {
	return auth.Actor{ID: p.ID, Role: p.Role, FullName: p.FullName}
}
