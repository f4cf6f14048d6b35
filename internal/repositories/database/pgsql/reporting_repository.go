package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetCategorySpending aggregates a user's expenses per category, largest
// total first. Categories without expense activity produce no row.
func (r *reportingRepository) GetCategorySpending(ctx context.Context, userID string, limit int) ([]domain.CategorySpending, error) {
	query := `
		SELECT
			t.category_id,
			c.name AS category_name,
			SUM(t.amount) AS total_amount,
			COUNT(t.transaction_id) AS transaction_count
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.user_id = $1
			AND t.transaction_type = 'EXPENSE'
		GROUP BY t.category_id, c.name
		ORDER BY SUM(t.amount) DESC
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying category spending: %w", err)
	}
	defer rows.Close()

	result := []domain.CategorySpending{}
	for rows.Next() {
		var row domain.CategorySpending
		if err := rows.Scan(
			&row.CategoryID,
			&row.CategoryName,
			&row.TotalAmount,
			&row.TransactionCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning category spending row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spending rows: %w", err)
	}

	return result, nil
}
