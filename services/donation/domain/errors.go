package domain

import "errors"

// Sentinel errors for the donation domain. Use errors.Is() to check these.
// Each maps onto one kind in the lifecycle error taxonomy: invalid input,
// role mismatch, lost race, duplicate claim, missing record.
var (
	// ErrDonationNotFound indicates the requested donation does not exist.
	ErrDonationNotFound = errors.New("donation not found")

	// ErrClaimNotFound indicates no claim exists for the donation.
	ErrClaimNotFound = errors.New("claim not found")

	// ErrCategoryNotFound indicates the referenced food category does not exist.
	ErrCategoryNotFound = errors.New("food category not found")

	// ErrInvalidDonation indicates the donation fields violate domain constraints.
	ErrInvalidDonation = errors.New("invalid donation")

	// ErrNotAuthorized indicates the actor's role does not permit the
	// attempted lifecycle operation, or the actor is not the attached party.
	ErrNotAuthorized = errors.New("not authorized for this operation")

	// ErrDonationConflict indicates the donation is no longer in the state
	// the operation requires, typically because another actor won the race.
	// Recoverable: refresh and retry against current state.
	ErrDonationConflict = errors.New("donation state conflict")

	// ErrDuplicateClaim indicates this receiver already holds a claim on the
	// donation. Terminal for this actor/donation pair.
	ErrDuplicateClaim = errors.New("donation already claimed by this receiver")
)
