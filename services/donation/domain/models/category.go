package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is static reference data describing a food category.
// Read-only from the lifecycle's perspective; rows are seeded by migration.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}
