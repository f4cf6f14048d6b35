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

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	modelCategory := mapping.ToModelCategory(*category)
	query := `
        INSERT INTO categories (name, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING category_id;
    `
	err := r.Pool.QueryRow(ctx, query,
		modelCategory.Name,
		modelCategory.Description,
		modelCategory.CreatedAt,
		modelCategory.UpdatedAt,
	).Scan(&category.CategoryID)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("category name %q already exists: %w", category.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `
		SELECT category_id, name, description, created_at, updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var modelCategory models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCategory.CategoryID,
		&modelCategory.Name,
		&modelCategory.Description,
		&modelCategory.CreatedAt,
		&modelCategory.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %d: %w", categoryID, err)
	}

	domainCategory := mapping.ToDomainCategory(modelCategory)
	return &domainCategory, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context, searchQuery *string, skip, limit int) ([]domain.Category, int64, error) {
	whereClause := ""
	args := []any{}
	if searchQuery != nil {
		whereClause = "WHERE name ILIKE '%' || $1 || '%'"
		args = append(args, *searchQuery)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM categories %s;`, whereClause)
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	listQuery := fmt.Sprintf(`
        SELECT category_id, name, description, created_at, updated_at
        FROM categories
        %s
        ORDER BY name ASC
        LIMIT $%d OFFSET $%d;
    `, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, skip)

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories := []models.Category{}
	for rows.Next() {
		var modelCategory models.Category
		if err := rows.Scan(
			&modelCategory.CategoryID,
			&modelCategory.Name,
			&modelCategory.Description,
			&modelCategory.CreatedAt,
			&modelCategory.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan category row: %w", err)
		}
		modelCategories = append(modelCategories, modelCategory)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return mapping.ToDomainCategorySlice(modelCategories), total, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)
	query := `
        UPDATE categories
        SET name = $1, description = $2, updated_at = $3
        WHERE category_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCategory.Name,
		modelCategory.Description,
		modelCategory.UpdatedAt,
		modelCategory.CategoryID,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("category name %q already exists: %w", category.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	query := `DELETE FROM categories WHERE category_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("category %d is referenced by transactions: %w", categoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
