package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/category"
)

const categoryColumns = `id, name, slug, description, display_order, parent_id, is_active, created_at, updated_at`

type postgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresCategoryRepository{pool: pool}
}

func (r *postgresCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, name, slug, description, display_order, parent_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Name, c.Slug, c.Description, c.DisplayOrder, c.ParentID, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

func (r *postgresCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, display_order = $5, parent_id = $6, is_active = $7, updated_at = $8
		WHERE id = $1`,
		c.ID, c.Name, c.Slug, c.Description, c.DisplayOrder, c.ParentID, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return r.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// RESTRICT from child categories or posts.
			return category.ErrCategoryInUse
		}
		return r.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return r.findOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
}

// FindBySlug matches regardless of the active flag so callers can show
// a disabled category page. Slugs are persisted lowercase.
func (r *postgresCategoryRepository) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return r.findOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = LOWER($1)`, slug)
}

func (r *postgresCategoryRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2)
		)`, slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

func (r *postgresCategoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	return r.findMany(ctx, `
		SELECT `+categoryColumns+` FROM categories
		WHERE is_active
		ORDER BY display_order, name`)
}

func (r *postgresCategoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	return r.findMany(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY display_order, name`)
}

func (r *postgresCategoryRepository) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*category.Category, error) {
	return r.findMany(ctx, `
		SELECT `+categoryColumns+` FROM categories
		WHERE parent_id = $1 AND is_active
		ORDER BY display_order, name`, parentID)
}

func (r *postgresCategoryRepository) Search(ctx context.Context, query string) ([]*category.Category, error) {
	return r.findMany(ctx, `
		SELECT `+categoryColumns+` FROM categories
		WHERE is_active AND (name ILIKE '%' || $1 || '%' OR slug ILIKE '%' || $1 || '%')
		ORDER BY display_order, name`, query)
}

func (r *postgresCategoryRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE parent_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category children: %w", err)
	}
	return exists, nil
}

func (r *postgresCategoryRepository) HasPosts(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE category_id = $1 AND NOT is_deleted)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category posts: %w", err)
	}
	return exists, nil
}

// ========================================
// HELPERS
// ========================================

func (r *postgresCategoryRepository) findOne(ctx context.Context, query string, args ...interface{}) (*category.Category, error) {
	var c category.Category
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.DisplayOrder, &c.ParentID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &c, nil
}

func (r *postgresCategoryRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*category.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var result []*category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description, &c.DisplayOrder, &c.ParentID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

func (r *postgresCategoryRepository) mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == "idx_categories_slug" {
				return category.ErrDuplicateSlug
			}
		case "23503": // foreign_key_violation
			if pgErr.ConstraintName == "categories_parent_id_fkey" {
				return category.ErrParentNotFound
			}
			return category.ErrCategoryInUse
		}
	}
	return fmt.Errorf("category repository: %w", err)
}
