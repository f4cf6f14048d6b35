package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs every pgsql repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
