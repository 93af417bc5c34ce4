package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/pkg/database"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
)

// CategoryRepository reads the food category directory. Categories are
// seeded by migrations and treated as read-only at runtime.
type CategoryRepository struct {
	db *database.Database
}

func NewCategoryRepository(db *database.Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListAll returns every category ordered by name.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]*models.Category, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, description, created_at
		FROM food_categories
		ORDER BY name`)
	if err != nil {
		return nil, database.WrapTransient(fmt.Errorf("query categories: %w", err))
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapTransient(fmt.Errorf("iterate categories: %w", err))
	}
	return out, nil
}

// Exists reports whether a category with the given id is in the directory.
func (r *CategoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := r.db.QueryCtx(ctx)
	defer cancel()

	var exists bool
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM food_categories WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return false, database.WrapTransient(fmt.Errorf("check category: %w", err))
	}
	return exists, nil
}
