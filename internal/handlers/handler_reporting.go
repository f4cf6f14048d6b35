package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
	"github.com/jkim-dev/budget_tracker_app/internal/middleware"
)

// ReportingHandler handles the aggregate report endpoints.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// NewReportingHandler creates a new reporting handler.
func NewReportingHandler(reportingService portssvc.ReportingSvc) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService}
}

// GetCategorySpending godoc
// @Summary Category spending report
// @Description Returns the user's top expense categories by summed amount,
// @Description largest first. Income is excluded; categories with no expense
// @Description activity never appear.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum categories returned" default(10)
// @Success 200 {array} dto.CategorySpendingResponse
// @Router /transactions/statistics/category-spending [get]
func (h *ReportingHandler) GetCategorySpending(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.CategorySpendingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.GetCategorySpending(c.Request.Context(), userID, params.Limit)
	if err != nil {
		respondServiceError(c, err, "Failed to generate category spending report")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategorySpendingResponses(rows))
}

// GetMonthlyTrends godoc
// @Summary Monthly trends report
// @Description Returns per-month income, expense and net totals for the
// @Description user's most recent active calendar months, oldest first.
// @Description Months with no transactions are omitted.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param months query int false "Number of recent months" default(6)
// @Success 200 {array} dto.MonthlyTrendResponse
// @Router /transactions/statistics/monthly-trends [get]
func (h *ReportingHandler) GetMonthlyTrends(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.MonthlyTrendsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	trends, err := h.reportingService.GetMonthlyTrends(c.Request.Context(), userID, params.Months)
	if err != nil {
		respondServiceError(c, err, "Failed to generate monthly trends report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyTrendResponses(trends))
}
