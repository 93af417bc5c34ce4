package services

import (
	"github.com/Lslreddy/surplus-to-success/pkg/app"
	"github.com/Lslreddy/surplus-to-success/services/profile/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Profile *ProfileService
}

// New wires the profile application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProfileRepository(a.Db)
	return &Services{
		Profile: NewProfileService(repo, a.Logger),
	}
}
