package models

import "fmt"

// DonationStatus is the lifecycle state of a donation.
// Flow: available → claimed → in-transit → delivered, with expired reachable
// out-of-band from available or claimed once the expiry timestamp passes.
type DonationStatus string

const (
	DonationAvailable DonationStatus = "available"
	DonationClaimed   DonationStatus = "claimed"
	DonationInTransit DonationStatus = "in-transit"
	DonationDelivered DonationStatus = "delivered"
	DonationExpired   DonationStatus = "expired"
)

// ParseDonationStatus validates a raw status string from storage or input.
func ParseDonationStatus(s string) (DonationStatus, error) {
	switch DonationStatus(s) {
	case DonationAvailable, DonationClaimed, DonationInTransit, DonationDelivered, DonationExpired:
		return DonationStatus(s), nil
	}
	return "", fmt.Errorf("unknown donation status %q", s)
}

func (s DonationStatus) String() string {
	return string(s)
}

// Terminal reports whether no further interactive transition is possible.
func (s DonationStatus) Terminal() bool {
	return s == DonationDelivered || s == DonationExpired
}

// ClaimStatus is the delivery progress of a claim.
type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "pending"
	ClaimPickedUp  ClaimStatus = "picked-up"
	ClaimDelivered ClaimStatus = "delivered"
	ClaimCancelled ClaimStatus = "cancelled"
)

// ParseClaimStatus validates a raw claim status string.
func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch ClaimStatus(s) {
	case ClaimPending, ClaimPickedUp, ClaimDelivered, ClaimCancelled:
		return ClaimStatus(s), nil
	}
	return "", fmt.Errorf("unknown claim status %q", s)
}

func (s ClaimStatus) String() string {
	return string(s)
}

// Active reports whether the claim still blocks other receivers.
func (s ClaimStatus) Active() bool {
	return s != ClaimCancelled
}
