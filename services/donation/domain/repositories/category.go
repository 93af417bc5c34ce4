package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
)

// CategoryRepository reads the static food category directory.
// No mutation operations exist in the lifecycle's scope; rows are seeded
// by migration.
type CategoryRepository interface {
	// ListAll returns every category ordered by name.
	ListAll(ctx context.Context) ([]*models.Category, error)

	// Exists reports whether a category with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
