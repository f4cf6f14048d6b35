package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jkim-dev/budget_tracker_app/internal/apperrors"
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// getOwnedTransaction is the single ownership-enforcement path for
// by-ID access: fetch, then fail with ErrNotFound or ErrForbidden before the
// transaction is handed to any caller.
func (s *transactionService) getOwnedTransaction(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return txn, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now().UTC().Truncate(time.Second)
	txnDate := now
	if req.TransactionDate != nil {
		txnDate = req.TransactionDate.UTC()
	}

	var method *domain.PaymentMethod
	if req.PaymentMethod != nil {
		m := domain.PaymentMethod(*req.PaymentMethod)
		method = &m
	}

	txn := domain.Transaction{
		UserID:          userID,
		CategoryID:      req.CategoryID,
		Amount:          req.Amount,
		TransactionType: domain.TransactionType(req.TransactionType),
		PaymentMethod:   method,
		Description:     req.Description,
		TransactionDate: txnDate,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: &now},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, &txn); err != nil {
		s.LogError(ctx, err, "Failed to create transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.Int64("transaction_id", txn.TransactionID))

	// Re-read to attach the resolved category.
	return s.transactionRepo.FindTransactionByID(ctx, txn.TransactionID)
}

func (s *transactionService) GetTransaction(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.getOwnedTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error) {
	filter := params.ToFilter(userID).Normalize()

	items, total, err := s.transactionRepo.FindTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return items, total, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.getOwnedTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	// Partial patch: only supplied fields overwrite.
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.TransactionType != nil {
		txn.TransactionType = domain.TransactionType(*req.TransactionType)
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.PaymentMethod != nil {
		m := domain.PaymentMethod(*req.PaymentMethod)
		txn.PaymentMethod = &m
	}
	if req.Description != nil {
		txn.Description = req.Description
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = req.TransactionDate.UTC()
	}
	now := time.Now().UTC()
	txn.UpdatedAt = &now

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", transactionID))

	// Re-read so a changed category comes back resolved.
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID int64) error {
	if _, err := s.getOwnedTransaction(ctx, userID, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID))
	return nil
}
