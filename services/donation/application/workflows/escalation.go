// Package workflows holds the durable delivery-escalation workflow. When a
// volunteer accepts a delivery, a Temporal timer starts; if the donation is
// still in transit when the timer fires, a DeliveryStalledEvent goes out so
// operators can chase the delivery.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Lslreddy/surplus-to-success/pkg/events"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
	pkgworkflows "github.com/Lslreddy/surplus-to-success/pkg/workflows"
	donationdomain "github.com/Lslreddy/surplus-to-success/services/donation/domain"
	domainevents "github.com/Lslreddy/surplus-to-success/services/donation/domain/events"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/repositories"
)

// EscalationInput identifies the delivery under watch and when it is
// considered stalled.
type EscalationInput struct {
	DonationID uuid.UUID
	Deadline   time.Time
}

// DeliveryEscalationWorkflow sleeps until the deadline, then asks the
// activity to check the donation and emit a stalled event if needed.
// The sleep survives process restarts; that is the point of running it
// on Temporal instead of an in-memory timer.
func DeliveryEscalationWorkflow(ctx workflow.Context, in EscalationInput) error {
	if wait := in.Deadline.Sub(workflow.Now(ctx)); wait > 0 {
		if err := workflow.Sleep(ctx, wait); err != nil {
			return err
		}
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: 5 * time.Second,
			MaximumAttempts: 5,
		},
	})
	return workflow.ExecuteActivity(ctx, (*EscalationActivities)(nil).EmitStalledIfInTransit, in).Get(ctx, nil)
}

// EscalationActivities holds the dependencies the escalation check needs at
// activity execution time.
type EscalationActivities struct {
	donations repositories.DonationRepository
	bus       *events.EventBus
	log       logger.Logger
}

func NewEscalationActivities(donations repositories.DonationRepository, bus *events.EventBus, log logger.Logger) *EscalationActivities {
	return &EscalationActivities{donations: donations, bus: bus, log: log}
}

// EmitStalledIfInTransit publishes DeliveryStalledEvent when the donation is
// still in transit past the deadline. Deliveries that completed, and
// donations that are gone entirely, resolve the watch silently.
func (a *EscalationActivities) EmitStalledIfInTransit(ctx context.Context, in EscalationInput) error {
	donation, err := a.donations.GetByID(ctx, in.DonationID)
	if err != nil {
		if errors.Is(err, donationdomain.ErrDonationNotFound) {
			return nil
		}
		return fmt.Errorf("check donation for escalation: %w", err)
	}
	if donation.Status != models.DonationInTransit {
		return nil
	}

	now := time.Now().UTC()
	event := domainevents.DeliveryStalledEvent{
		EventID:    uuid.New(),
		Version:    1,
		DonationID: in.DonationID,
		Deadline:   in.Deadline,
		OccurredAt: now,
	}
	if err := events.PublishJSON(ctx, a.bus, domainevents.TopicDeliveryStalled, event); err != nil {
		return err
	}

	a.log.WarnContext(ctx, "delivery stalled past deadline",
		"donation_id", in.DonationID, "deadline", in.Deadline)
	return nil
}

// TemporalEscalationScheduler starts one escalation workflow per donation.
// The workflow ID is derived from the donation ID, so a duplicate accept
// attempt cannot start a second timer.
type TemporalEscalationScheduler struct {
	tc    *pkgworkflows.TemporalClient
	delay time.Duration
	log   logger.Logger
}

func NewTemporalEscalationScheduler(tc *pkgworkflows.TemporalClient, delay time.Duration, log logger.Logger) *TemporalEscalationScheduler {
	return &TemporalEscalationScheduler{tc: tc, delay: delay, log: log}
}

// ScheduleEscalation starts the durable timer counting from pickedUpAt.
func (s *TemporalEscalationScheduler) ScheduleEscalation(ctx context.Context, donationID uuid.UUID, pickedUpAt time.Time) error {
	in := EscalationInput{
		DonationID: donationID,
		Deadline:   pickedUpAt.Add(s.delay),
	}
	opts := client.StartWorkflowOptions{
		ID:        "delivery-escalation-" + donationID.String(),
		TaskQueue: s.tc.TaskQueue,
	}
	_, err := s.tc.Client.ExecuteWorkflow(ctx, opts, DeliveryEscalationWorkflow, in)
	if err != nil {
		var already *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &already) {
			return nil
		}
		return fmt.Errorf("start escalation workflow: %w", err)
	}

	s.log.InfoContext(ctx, "escalation scheduled",
		"donation_id", donationID, "deadline", in.Deadline)
	return nil
}
