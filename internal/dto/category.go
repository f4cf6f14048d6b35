package dto

import (
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	Description string `json:"description" binding:"max=200"`
}

// UpdateCategoryRequest defines a partial category update. Pointer fields
// distinguish omitted fields from zero values.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description" binding:"omitempty,max=200"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	SearchQuery *string `form:"search_query"`
	Skip        int     `form:"skip,default=0"`
	Limit       int     `form:"limit,default=100"`
}

// CategoryResponse is the public representation of a category.
type CategoryResponse struct {
	CategoryID  int64  `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListCategoriesResponse wraps a category page with its total match count.
type ListCategoriesResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int64              `json:"total"`
}

// ToCategoryResponse converts a domain category to its response DTO.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  category.CategoryID,
		Name:        category.Name,
		Description: category.Description,
	}
}

// ToListCategoriesResponse converts a category page to the list response DTO.
func ToListCategoriesResponse(categories []domain.Category, total int64) ListCategoriesResponse {
	items := make([]CategoryResponse, len(categories))
	for i := range categories {
		items[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Items: items, Total: total}
}
