package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
)

// CategoryHandler handles category CRUD requests. Categories are shared
// reference data: any authenticated user may read and manage them.
type CategoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService portssvc.CategorySvcFacade) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 409 {object} ErrorResponse "Category name already exists"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// GetCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid category ID"})
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// ListCategories godoc
// @Summary List categories
// @Description Lists categories ordered by name, optionally filtered by a
// @Description case-insensitive name search.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param search_query query string false "Case-insensitive name substring"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} dto.ListCategoriesResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	categories, total, err := h.categoryService.ListCategories(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories, total))
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Partially updates a category; only supplied fields change.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category name already exists"
// @Router /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid category ID"})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category. Fails when transactions still reference it.
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "Category deleted"
// @Failure 400 {object} ErrorResponse "Category still referenced by transactions"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid category ID"})
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		respondServiceError(c, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
