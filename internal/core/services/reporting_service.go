package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
)

const (
	defaultSpendingLimit = 10
	defaultTrendMonths   = 6
)

type reportingService struct {
	BaseService
	reportingRepo   portsrepo.ReportingRepository
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, transactionRepo portsrepo.TransactionReader) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo:   reportingRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) GetCategorySpending(ctx context.Context, userID string, limit int) ([]domain.CategorySpending, error) {
	if limit <= 0 {
		limit = defaultSpendingLimit
	}

	rows, err := s.reportingRepo.GetCategorySpending(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category spending")
		return nil, fmt.Errorf("failed to retrieve category spending: %w", err)
	}

	s.LogInfo(ctx, "Category spending report generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// GetMonthlyTrends loads the user's full transaction history and buckets it by
// UTC calendar month. Linear in the user's transaction count per call.
func (s *reportingService) GetMonthlyTrends(ctx context.Context, userID string, months int) ([]domain.MonthlyTrend, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}

	transactions, err := s.transactionRepo.FindAllTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly trends")
		return nil, fmt.Errorf("failed to load transactions for monthly trends: %w", err)
	}

	trends := domain.BuildMonthlyTrends(transactions, months)

	s.LogInfo(ctx, "Monthly trend report generated",
		slog.Int("transaction_count", len(transactions)),
		slog.Int("bucket_count", len(trends)))
	return trends, nil
}
