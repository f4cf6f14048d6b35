package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkim-dev/budget_tracker_app/internal/apperrors"
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
	"github.com/jkim-dev/budget_tracker_app/internal/models"
	"github.com/jkim-dev/budget_tracker_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	t.transaction_id, t.user_id, t.category_id, t.amount, t.transaction_type,
	t.payment_method, t.description, t.transaction_date, t.created_at, t.updated_at`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(*txn)
	query := `
        INSERT INTO transactions (user_id, category_id, amount, transaction_type, payment_method, description, transaction_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING transaction_id;
    `
	err := r.Pool.QueryRow(ctx, query,
		modelTxn.UserID,
		modelTxn.CategoryID,
		modelTxn.Amount,
		modelTxn.TransactionType,
		modelTxn.PaymentMethod,
		modelTxn.Description,
		modelTxn.TransactionDate,
		modelTxn.CreatedAt,
		modelTxn.UpdatedAt,
	).Scan(&txn.TransactionID)
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("category %d does not exist: %w", txn.CategoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s, c.name AS category_name, c.description AS category_description
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_id = $1;
	`, transactionColumns)

	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.UserID,
		&modelTxn.CategoryID,
		&modelTxn.Amount,
		&modelTxn.TransactionType,
		&modelTxn.PaymentMethod,
		&modelTxn.Description,
		&modelTxn.TransactionDate,
		&modelTxn.CreatedAt,
		&modelTxn.UpdatedAt,
		&modelTxn.CategoryName,
		&modelTxn.CategoryDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %d: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// buildWhereClause translates a normalized filter into a conjunctive WHERE
// clause with positional arguments. The owner condition always comes first;
// every optional criterion appends one condition.
func buildWhereClause(f domain.TransactionFilter) (string, []any) {
	conditions := []string{"t.user_id = $1"}
	args := []any{f.UserID}

	next := func() int { return len(args) + 1 }

	if f.TransactionType != nil {
		conditions = append(conditions, fmt.Sprintf("t.transaction_type = $%d", next()))
		args = append(args, string(*f.TransactionType))
	}
	if f.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("t.category_id = $%d", next()))
		args = append(args, *f.CategoryID)
	}
	if f.PaymentMethod != nil {
		conditions = append(conditions, fmt.Sprintf("t.payment_method = $%d", next()))
		args = append(args, string(*f.PaymentMethod))
	}
	if f.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.transaction_date >= $%d", next()))
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.transaction_date <= $%d", next()))
		args = append(args, *f.EndDate)
	}
	if f.MinAmount != nil {
		conditions = append(conditions, fmt.Sprintf("t.amount >= $%d", next()))
		args = append(args, *f.MinAmount)
	}
	if f.MaxAmount != nil {
		conditions = append(conditions, fmt.Sprintf("t.amount <= $%d", next()))
		args = append(args, *f.MaxAmount)
	}
	if f.SearchQuery != nil {
		conditions = append(conditions, fmt.Sprintf("t.description ILIKE '%%' || $%d || '%%'", next()))
		args = append(args, *f.SearchQuery)
	}

	return strings.Join(conditions, " AND "), args
}

// orderByClause maps the validated sort directive to SQL. The transaction ID
// is appended ascending as a deterministic tiebreak.
func orderByClause(f domain.TransactionFilter) string {
	column := "t.transaction_date"
	if f.SortBy == domain.SortByAmount {
		column = "t.amount"
	}
	direction := "DESC"
	if f.SortOrder == domain.SortAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, t.transaction_id ASC", column, direction)
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	filter = filter.Normalize()
	whereClause, args := buildWhereClause(filter)

	// Total is computed under the identical predicate before windowing.
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM transactions t WHERE %s;`, whereClause)
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s, c.name AS category_name, c.description AS category_description
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE %s
		%s
		LIMIT $%d OFFSET $%d;
	`, transactionColumns, whereClause, orderByClause(filter), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Skip)

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		if err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.UserID,
			&modelTxn.CategoryID,
			&modelTxn.Amount,
			&modelTxn.TransactionType,
			&modelTxn.PaymentMethod,
			&modelTxn.Description,
			&modelTxn.TransactionDate,
			&modelTxn.CreatedAt,
			&modelTxn.UpdatedAt,
			&modelTxn.CategoryName,
			&modelTxn.CategoryDescription,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, modelTxn)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), total, nil
}

func (r *PgxTransactionRepository) FindAllTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		WHERE t.user_id = $1;
	`, transactionColumns)

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		if err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.UserID,
			&modelTxn.CategoryID,
			&modelTxn.Amount,
			&modelTxn.TransactionType,
			&modelTxn.PaymentMethod,
			&modelTxn.Description,
			&modelTxn.TransactionDate,
			&modelTxn.CreatedAt,
			&modelTxn.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, modelTxn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
        UPDATE transactions
        SET category_id = $1, amount = $2, transaction_type = $3, payment_method = $4,
            description = $5, transaction_date = $6, updated_at = $7
        WHERE transaction_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelTxn.CategoryID,
		modelTxn.Amount,
		modelTxn.TransactionType,
		modelTxn.PaymentMethod,
		modelTxn.Description,
		modelTxn.TransactionDate,
		modelTxn.UpdatedAt,
		modelTxn.TransactionID,
	)
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("category %d does not exist: %w", txn.CategoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
