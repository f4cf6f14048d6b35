package repositories

import (
	"context"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its ID.
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// FindCategories retrieves a windowed list of categories matching an
	// optional case-insensitive name search, plus the total count of matches
	// ignoring the window.
	FindCategories(ctx context.Context, searchQuery *string, skip, limit int) ([]domain.Category, int64, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category and fills in its assigned ID.
	SaveCategory(ctx context.Context, category *domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory permanently removes a category.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
