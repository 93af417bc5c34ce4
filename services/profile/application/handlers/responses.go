package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/services/profile/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
} // @name ProfileErrorResponse

// ProfileResponse is the wire representation of a profile.
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"     example:"kitchen@example.org"`
	FullName    string    `json:"full_name" example:"Community Kitchen"`
	Role        string    `json:"role"      example:"donor"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
} // @name ProfileResponse

func toProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		Role:        string(p.Role),
		PhoneNumber: p.PhoneNumber,
		City:        p.City,
		State:       p.State,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
