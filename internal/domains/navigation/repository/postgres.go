package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/navigation"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/logger"
)

const navigationColumns = `id, label, href, display_order, parent_id, is_active, created_at, updated_at`

type postgresNavigationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) navigation.Repository {
	return &postgresNavigationRepository{pool: pool}
}

func (r *postgresNavigationRepository) Create(ctx context.Context, item *navigation.NavigationItem) error {
	return r.withTableRetry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO navigation_items (id, label, href, display_order, parent_id, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.Label, item.Href, item.DisplayOrder, item.ParentID, item.IsActive, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			return r.mapError(err)
		}
		return nil
	})
}

func (r *postgresNavigationRepository) Update(ctx context.Context, item *navigation.NavigationItem) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE navigation_items
		SET label = $2, href = $3, display_order = $4, parent_id = $5, is_active = $6, updated_at = $7
		WHERE id = $1`,
		item.ID, item.Label, item.Href, item.DisplayOrder, item.ParentID, item.IsActive, item.UpdatedAt,
	)
	if err != nil {
		return r.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return navigation.ErrItemNotFound
	}
	return nil
}

func (r *postgresNavigationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM navigation_items WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return navigation.ErrItemInUse
		}
		return fmt.Errorf("failed to delete navigation item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return navigation.ErrItemNotFound
	}
	return nil
}

func (r *postgresNavigationRepository) FindByID(ctx context.Context, id uuid.UUID) (*navigation.NavigationItem, error) {
	var item navigation.NavigationItem
	err := r.pool.QueryRow(ctx,
		`SELECT `+navigationColumns+` FROM navigation_items WHERE id = $1`, id,
	).Scan(
		&item.ID, &item.Label, &item.Href, &item.DisplayOrder, &item.ParentID, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, navigation.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find navigation item: %w", err)
	}
	return &item, nil
}

func (r *postgresNavigationRepository) ListActive(ctx context.Context) ([]*navigation.NavigationItem, error) {
	var items []*navigation.NavigationItem
	err := r.withTableRetry(ctx, func() error {
		var err error
		items, err = r.findMany(ctx, `
			SELECT `+navigationColumns+` FROM navigation_items
			WHERE is_active
			ORDER BY display_order, label`)
		return err
	})
	return items, err
}

func (r *postgresNavigationRepository) ListAll(ctx context.Context) ([]*navigation.NavigationItem, error) {
	var items []*navigation.NavigationItem
	err := r.withTableRetry(ctx, func() error {
		var err error
		items, err = r.findMany(ctx, `
			SELECT `+navigationColumns+` FROM navigation_items
			ORDER BY display_order, label`)
		return err
	})
	return items, err
}

func (r *postgresNavigationRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM navigation_items WHERE parent_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check navigation children: %w", err)
	}
	return exists, nil
}

// ========================================
// HELPERS
// ========================================

// withTableRetry creates the navigation table and retries once when a
// query fails with undefined_table. The table was added after the
// initial schema, so older databases may not have it yet.
func (r *postgresNavigationRepository) withTableRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "42P01" {
		return err
	}

	logger.Warn("navigation_items table missing, creating it", err)
	if createErr := database.EnsureNavigationTable(ctx, r.pool); createErr != nil {
		return createErr
	}

	return fn()
}

func (r *postgresNavigationRepository) findMany(ctx context.Context, query string) ([]*navigation.NavigationItem, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list navigation items: %w", err)
	}
	defer rows.Close()

	var result []*navigation.NavigationItem
	for rows.Next() {
		var item navigation.NavigationItem
		if err := rows.Scan(
			&item.ID, &item.Label, &item.Href, &item.DisplayOrder, &item.ParentID, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan navigation item: %w", err)
		}
		result = append(result, &item)
	}
	return result, rows.Err()
}

func (r *postgresNavigationRepository) mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return navigation.ErrParentNotFound
	}
	return fmt.Errorf("navigation repository: %w", err)
}
