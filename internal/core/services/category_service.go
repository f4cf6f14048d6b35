package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now().UTC()
	category := domain.Category{
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: &now},
	}

	if err := s.categoryRepo.SaveCategory(ctx, &category); err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.Int64("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.Category, int64, error) {
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}
	limit := params.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}

	categories, total, err := s.categoryRepo.FindCategories(ctx, params.SearchQuery, skip, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, total, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}

	// Only supplied fields overwrite.
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	now := time.Now().UTC()
	category.UpdatedAt = &now

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.Int64("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.LogInfo(ctx, "Category updated", slog.Int64("category_id", categoryID))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.Int64("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.LogInfo(ctx, "Category deleted", slog.Int64("category_id", categoryID))
	return nil
}
