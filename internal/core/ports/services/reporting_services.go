package services

import (
	"context"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// ReportingSvc defines the read-only aggregate reports over a user's transactions.
type ReportingSvc interface {
	// GetCategorySpending returns the user's top-limit expense categories by
	// summed amount. Categories without expense activity never appear.
	GetCategorySpending(ctx context.Context, userID string, limit int) ([]domain.CategorySpending, error)

	// GetMonthlyTrends returns per-month income/expense/net for the user's
	// `months` most recent active calendar months, oldest first.
	GetMonthlyTrends(ctx context.Context, userID string, months int) ([]domain.MonthlyTrend, error)
}
