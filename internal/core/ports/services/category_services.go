package services

import (
	"context"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
)

// CategoryReaderSvc defines read operations for categories.
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// ListCategories retrieves a windowed category list with its total count.
	ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.Category, int64, error)
}

// CategoryWriterSvc defines write operations for categories.
type CategoryWriterSvc interface {
	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory applies a partial update; only supplied fields overwrite.
	UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory permanently removes a category.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategorySvcFacade combines all category-related service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
