package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	temporalworker "go.temporal.io/sdk/worker"

	"github.com/Lslreddy/surplus-to-success/pkg/app"
	"github.com/Lslreddy/surplus-to-success/pkg/cache"
	"github.com/Lslreddy/surplus-to-success/pkg/config"
	"github.com/Lslreddy/surplus-to-success/pkg/database"
	"github.com/Lslreddy/surplus-to-success/pkg/events"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
	"github.com/Lslreddy/surplus-to-success/pkg/telemetry"
	"github.com/Lslreddy/surplus-to-success/pkg/workflows"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
	donationWorkflows "github.com/Lslreddy/surplus-to-success/services/donation/application/workflows"
	donationEvents "github.com/Lslreddy/surplus-to-success/services/donation/domain/events"
	"github.com/Lslreddy/surplus-to-success/services/donation/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalHostPort != "" {
		temporalClient, err = workflows.NewTemporalClient(ctx,
			cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	} else {
		log.Info("temporal not configured, delivery escalations disabled")
	}

	appConfig := &app.Application{
		Cfg:            cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	svcs := appsvcs.New(appConfig)

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	sched, err := startExpirySweep(ctx, cfg, svcs, log)
	if err != nil {
		log.Error("failed to start expiry sweep", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer sched.Shutdown() //nolint:errcheck

	if temporalClient != nil {
		w := temporalworker.New(temporalClient.Client, temporalClient.TaskQueue, temporalworker.Options{})
		w.RegisterWorkflow(donationWorkflows.DeliveryEscalationWorkflow)
		w.RegisterActivity(donationWorkflows.NewEscalationActivities(
			postgres.NewDonationRepository(pool, eventBus), eventBus, log,
		).EmitStalledIfInTransit)

		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		log.Info("temporal worker started", "task_queue", temporalClient.TaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// startExpirySweep runs the expiry sweep on a fixed interval. The sweep is
// idempotent, so overlapping worker instances cannot double-expire.
func startExpirySweep(ctx context.Context, cfg *config.Config, svcs *appsvcs.Services, log logger.Logger) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.SweepInterval),
		gocron.NewTask(func() {
			sweepCtx, cancel := context.WithTimeout(ctx, cfg.SweepInterval)
			defer cancel()
			if _, err := svcs.Lifecycle.ExpireDonations(sweepCtx, time.Now().UTC()); err != nil {
				log.ErrorContext(sweepCtx, "expiry sweep failed", "error", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	log.Info("expiry sweep scheduled", "interval", cfg.SweepInterval)
	return sched, nil
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	donationCache := cache.NewDonationCache(a.Redis)
	donationRepo := postgres.NewDonationRepository(a.Db, a.EventBus)

	subscriptions := map[string]func(context.Context, *message.Message) error{
		donationEvents.TopicDonationPosted:    handleDonationPosted(a, donationRepo, donationCache),
		donationEvents.TopicDonationClaimed:   invalidateDonation(a, donationCache, donationIDFromClaimed),
		donationEvents.TopicDeliveryAccepted:  invalidateDonation(a, donationCache, donationIDFromAccepted),
		donationEvents.TopicDeliveryCompleted: invalidateDonation(a, donationCache, donationIDFromCompleted),
		donationEvents.TopicDonationExpired:   invalidateDonation(a, donationCache, donationIDFromExpired),
	}

	topics := make([]string, 0, len(subscriptions))
	for topic, handler := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleDonationPosted warms the Redis read-model cache so the first reads
// of a fresh donation are served from cache.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
func handleDonationPosted(a *app.Application, repo *postgres.DonationRepository, donationCache *cache.DonationCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt donationEvents.DonationPostedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		donation, err := repo.GetByID(ctx, evt.DonationID)
		if err != nil {
			// The row may be gone already (expired and cleaned up); nothing to warm.
			a.Logger.WarnContext(ctx, "donation missing during cache warm",
				"donation_id", evt.DonationID, "error", err)
			return nil
		}

		if err := donationCache.Set(ctx, &cache.CachedDonation{
			ID:                 donation.ID,
			DonorID:            donation.DonorID,
			Title:              donation.Title,
			Description:        donation.Description,
			CategoryID:         donation.CategoryID,
			Quantity:           donation.Quantity,
			Unit:               donation.Unit,
			Freshness:          donation.Freshness.String(),
			ExpiryTime:         donation.ExpiryTime,
			PickupAddress:      donation.PickupAddress,
			PickupInstructions: donation.PickupInstructions,
			PhotoURL:           donation.PhotoURL,
			Status:             donation.Status.String(),
			CreatedAt:          donation.CreatedAt,
			UpdatedAt:          donation.UpdatedAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for donation.posted",
				"donation_id", evt.DonationID, "error", err)
		}
		return nil
	}
}

// invalidateDonation drops the cached donation named by the event so stale
// status never outlives a lifecycle transition.
func invalidateDonation(a *app.Application, donationCache *cache.DonationCache, extract func([]byte) (uuid.UUID, error)) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		id, err := extract(msg.Payload)
		if err != nil {
			return err
		}
		if err := donationCache.Delete(ctx, id); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed",
				"donation_id", id, "error", err)
		}
		return nil
	}
}

func donationIDFromClaimed(payload []byte) (uuid.UUID, error) {
	var evt donationEvents.DonationClaimedEvent
	err := json.Unmarshal(payload, &evt)
	return evt.DonationID, err
}

func donationIDFromAccepted(payload []byte) (uuid.UUID, error) {
	var evt donationEvents.DeliveryAcceptedEvent
	err := json.Unmarshal(payload, &evt)
	return evt.DonationID, err
}

func donationIDFromCompleted(payload []byte) (uuid.UUID, error) {
	var evt donationEvents.DeliveryCompletedEvent
	err := json.Unmarshal(payload, &evt)
	return evt.DonationID, err
}

func donationIDFromExpired(payload []byte) (uuid.UUID, error) {
	var evt donationEvents.DonationExpiredEvent
	err := json.Unmarshal(payload, &evt)
	return evt.DonationID, err
}
