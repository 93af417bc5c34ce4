package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for the donation lifecycle. Every event is published in
// the same transaction as the row mutation it describes.
const (
	TopicDonationPosted    = "donation.posted"
	TopicDonationClaimed   = "donation.claimed"
	TopicDeliveryAccepted  = "delivery.accepted"
	TopicDeliveryCompleted = "delivery.completed"
	TopicDonationExpired   = "donation.expired"
	TopicDeliveryStalled   = "delivery.stalled"
)

// DonationPostedEvent is published after a donor's donation is persisted.
type DonationPostedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	DonationID uuid.UUID `json:"donation_id"`
	DonorID    uuid.UUID `json:"donor_id"`
	Title      string    `json:"title"`
	CategoryID uuid.UUID `json:"category_id"`
	ExpiryTime time.Time `json:"expiry_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DonationClaimedEvent is published when a receiver wins the claim race.
type DonationClaimedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	DonationID uuid.UUID `json:"donation_id"`
	ClaimID    uuid.UUID `json:"claim_id"`
	ClaimerID  uuid.UUID `json:"claimer_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DeliveryAcceptedEvent is published when a volunteer attaches to a claim.
type DeliveryAcceptedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	DonationID  uuid.UUID `json:"donation_id"`
	ClaimID     uuid.UUID `json:"claim_id"`
	VolunteerID uuid.UUID `json:"volunteer_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// DeliveryCompletedEvent is published when the attached volunteer marks
// the donation delivered.
type DeliveryCompletedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	DonationID  uuid.UUID `json:"donation_id"`
	ClaimID     uuid.UUID `json:"claim_id"`
	VolunteerID uuid.UUID `json:"volunteer_id"`
	DeliveredAt time.Time `json:"delivered_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// DonationExpiredEvent is published per donation the sweep expires.
type DonationExpiredEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	DonationID uuid.UUID `json:"donation_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DeliveryStalledEvent is emitted by the escalation workflow when a
// delivery stays in transit past its deadline.
type DeliveryStalledEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	DonationID uuid.UUID `json:"donation_id"`
	Deadline   time.Time `json:"deadline"`
	OccurredAt time.Time `json:"occurred_at"`
}
