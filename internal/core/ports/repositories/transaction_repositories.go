package repositories

import (
	"context"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction with its category
	// resolved. Ownership is NOT checked here; callers must verify it.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// FindTransactions returns the windowed, ordered transactions matching the
	// normalized filter, plus the total count under the same predicate
	// ignoring the window.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error)

	// FindAllTransactionsByUser retrieves every transaction owned by a user,
	// without a window. Used by aggregation.
	FindAllTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and fills in its assigned ID.
	SaveTransaction(ctx context.Context, txn *domain.Transaction) error

	// UpdateTransaction updates an existing transaction's mutable fields.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction permanently removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
