package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkim-dev/budget_tracker_app/internal/apperrors"
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
	"github.com/jkim-dev/budget_tracker_app/internal/models"
	"github.com/jkim-dev/budget_tracker_app/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Email,
		modelUser.FullName,
		modelUser.PasswordHash,
		modelUser.IsActive,
		modelUser.IsSuperuser,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID), fmt.Sprintf("ID %s", userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at
		FROM users
		WHERE email = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, email), fmt.Sprintf("email %s", email))
}

func (r *PgxUserRepository) scanUser(row pgx.Row, descriptor string) (*domain.User, error) {
	var modelUser models.User
	err := row.Scan(
		&modelUser.UserID,
		&modelUser.Email,
		&modelUser.FullName,
		&modelUser.PasswordHash,
		&modelUser.IsActive,
		&modelUser.IsSuperuser,
		&modelUser.CreatedAt,
		&modelUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", descriptor, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// DeleteUser removes the user and their transactions in a single database
// transaction so a failure partway leaves both tables untouched.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete user transactions: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
