// Package services contains stateless domain services for the donation
// bounded context: the lifecycle transition table and cross-field donation
// validation. Everything here operates purely on domain types with zero
// external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
)

// transitions is the full set of legal donation status moves.
// available → claimed → in-transit → delivered, with expired reachable from
// available or claimed by the sweep. Anything else is a conflict.
var transitions = map[models.DonationStatus]map[models.DonationStatus]bool{
	models.DonationAvailable: {
		models.DonationClaimed: true,
		models.DonationExpired: true,
	},
	models.DonationClaimed: {
		models.DonationInTransit: true,
		models.DonationExpired:   true,
	},
	models.DonationInTransit: {
		models.DonationDelivered: true,
	},
}

// CanTransition reports whether a donation may move from one status to another.
func CanTransition(from, to models.DonationStatus) bool {
	return transitions[from][to]
}

const (
	maxTitleLength   = 255
	maxAddressLength = 500
)

// ValidateDonation enforces the field constraints for posting a donation:
// non-empty trimmed required text, positive quantity, a real category
// reference, a valid freshness value, and an expiry strictly in the future.
func ValidateDonation(d *models.Donation) error {
	if d == nil {
		return fmt.Errorf("donation cannot be nil")
	}

	if err := validateText("title", d.Title, maxTitleLength); err != nil {
		return err
	}
	if err := validateText("unit", d.Unit, 50); err != nil {
		return err
	}
	if err := validateText("pickup address", d.PickupAddress, maxAddressLength); err != nil {
		return err
	}

	if d.Quantity <= 0 {
		return fmt.Errorf("quantity must be a positive integer, got %d", d.Quantity)
	}

	if d.CategoryID == uuid.Nil {
		return fmt.Errorf("category reference must be set")
	}

	if d.DonorID == uuid.Nil {
		return fmt.Errorf("donor reference must be set")
	}

	if _, err := models.ParseFreshness(d.Freshness.String()); err != nil {
		return err
	}

	if !d.ExpiryTime.After(d.CreatedAt) {
		return fmt.Errorf("expiry time must be after creation time")
	}

	return nil
}

// ValidateExpiry rejects expiry timestamps at or before now. Split from
// ValidateDonation so handlers can reject stale input before construction.
func ValidateExpiry(expiry, now time.Time) error {
	if !expiry.After(now) {
		return fmt.Errorf("expiry time must be in the future")
	}
	return nil
}

func validateText(field, s string, maxLen int) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if s != trimmed {
		return fmt.Errorf("%s must not have leading or trailing whitespace", field)
	}
	if len(s) > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", field, maxLen)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}
	return nil
}
