package services

import (
	"context"
	"fmt"

	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/repositories"
)

// CategoryService serves the read-only food category directory.
type CategoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
