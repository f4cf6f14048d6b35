package repositories

import (
	"context"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries for reporting.
type ReportingRepository interface {
	// GetCategorySpending returns per-category expense totals for a user,
	// largest total first, truncated to limit rows.
	GetCategorySpending(ctx context.Context, userID string, limit int) ([]domain.CategorySpending, error)
}
