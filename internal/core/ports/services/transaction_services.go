package services

import (
	"context"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions. Every method
// is scoped to the requesting user; transactions owned by other users surface
// as ErrForbidden (single lookups) or are silently excluded (lists).
type TransactionReaderSvc interface {
	// GetTransaction retrieves one owned transaction with its category resolved.
	GetTransaction(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error)

	// ListTransactions runs the filter/sort/paginate engine and returns the
	// windowed items plus the total count of matches ignoring the window.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error)
}

// TransactionWriterSvc defines write operations for transactions.
type TransactionWriterSvc interface {
	// CreateTransaction records a new transaction owned by userID.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update to an owned transaction.
	UpdateTransaction(ctx context.Context, userID string, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction permanently removes an owned transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID int64) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
