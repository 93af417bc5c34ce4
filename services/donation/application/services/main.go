package services

import (
	"github.com/Lslreddy/surplus-to-success/pkg/app"
	"github.com/Lslreddy/surplus-to-success/pkg/cache"
	"github.com/Lslreddy/surplus-to-success/services/donation/application/workflows"
	"github.com/Lslreddy/surplus-to-success/services/donation/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Lifecycle  *LifecycleService
	Categories *CategoryService
}

// New wires all donation application services with infrastructure from the
// Application container. Escalation scheduling is skipped when Temporal is
// not configured.
func New(a *app.Application) *Services {
	donationRepo := postgres.NewDonationRepository(a.Db, a.EventBus)
	claimRepo := postgres.NewClaimRepository(a.Db, a.EventBus)
	categoryRepo := postgres.NewCategoryRepository(a.Db)

	var donationCache *cache.DonationCache
	if a.Redis != nil {
		donationCache = cache.NewDonationCache(a.Redis)
	}

	var escalations EscalationScheduler
	if a.TemporalClient != nil {
		escalations = workflows.NewTemporalEscalationScheduler(a.TemporalClient, a.Cfg.EscalationDelay, a.Logger)
	}

	return &Services{
		Lifecycle:  NewLifecycleService(donationRepo, claimRepo, categoryRepo, donationCache, escalations, a.Logger),
		Categories: NewCategoryService(categoryRepo),
	}
}
