package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	sentinels := []error{
		ErrDonationNotFound,
		ErrClaimNotFound,
		ErrCategoryNotFound,
		ErrInvalidDonation,
		ErrNotAuthorized,
		ErrDonationConflict,
		ErrDuplicateClaim,
	}
	for _, err := range sentinels {
		if err == nil {
			t.Fatal("sentinel error must not be nil")
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrDonationConflict.Error() != "donation state conflict" {
		t.Fatalf("unexpected message: %q", ErrDonationConflict.Error())
	}
	if ErrDuplicateClaim.Error() != "donation already claimed by this receiver" {
		t.Fatalf("unexpected message: %q", ErrDuplicateClaim.Error())
	}
	if ErrNotAuthorized.Error() != "not authorized for this operation" {
		t.Fatalf("unexpected message: %q", ErrNotAuthorized.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("claim donation: %w", ErrDonationConflict)
	if !errors.Is(wrapped, ErrDonationConflict) {
		t.Fatal("errors.Is must match wrapped ErrDonationConflict")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidDonation, errors.New("quantity must be positive"))
	if !errors.Is(wrapped2, ErrInvalidDonation) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidDonation")
	}

	if errors.Is(ErrDonationConflict, ErrDuplicateClaim) {
		t.Fatal("conflict and duplicate claim must be distinct sentinels")
	}
}
