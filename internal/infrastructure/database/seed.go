package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	pkgdb "blog-backend/pkg/database"
	"blog-backend/pkg/logger"
)

// ========================================
// DEMO DATA SEED
// ========================================

// SeedDemoData inserts a small set of demo content: an admin account,
// a category tree, a welcome post and the public navigation. Every
// insert is keyed on a natural unique column with ON CONFLICT DO
// NOTHING, and the whole seed runs in one transaction, so reruns and
// partial failures leave the database consistent.
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	adminID, err := pkgdb.WithTransactionResult(ctx, pool, func(ctx context.Context, tx pgx.Tx) (uuid.UUID, error) {
		adminID, err := seedAdmin(ctx, tx)
		if err != nil {
			return uuid.Nil, err
		}

		programmingID, err := seedCategories(ctx, tx)
		if err != nil {
			return uuid.Nil, err
		}

		if err := seedWelcomePost(ctx, tx, programmingID, adminID); err != nil {
			return uuid.Nil, err
		}

		if err := seedNavigation(ctx, tx); err != nil {
			return uuid.Nil, err
		}

		return adminID, nil
	})
	if err != nil {
		return err
	}

	logger.Info("demo data seeded", map[string]interface{}{
		"admin":    "admin@example.com",
		"admin_id": adminID.String(),
	})
	return nil
}

func seedAdmin(ctx context.Context, tx pgx.Tx) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), 12)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, 'admin', TRUE)
		ON CONFLICT (LOWER(email)) DO NOTHING`,
		uuid.New(), "admin@example.com", string(hash), "Administrator",
	); err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	// The insert may have been a no-op, so read the id back.
	var adminID uuid.UUID
	if err := tx.QueryRow(ctx,
		`SELECT id FROM users WHERE LOWER(email) = LOWER($1)`, "admin@example.com",
	).Scan(&adminID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to look up seed admin: %w", err)
	}

	return adminID, nil
}

func seedCategories(ctx context.Context, tx pgx.Tx) (uuid.UUID, error) {
	categories := []struct {
		name  string
		slug  string
		order int
	}{
		{"Programming", "programming", 1},
		{"Databases", "databases", 2},
		{"DevOps", "devops", 3},
	}

	for _, cat := range categories {
		if _, err := tx.Exec(ctx, `
			INSERT INTO categories (id, name, slug, display_order, is_active)
			VALUES ($1, $2, $3, $4, TRUE)
			ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), cat.name, cat.slug, cat.order,
		); err != nil {
			return uuid.Nil, fmt.Errorf("failed to seed category %s: %w", cat.slug, err)
		}
	}

	var programmingID uuid.UUID
	if err := tx.QueryRow(ctx,
		`SELECT id FROM categories WHERE slug = $1`, "programming",
	).Scan(&programmingID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to look up seed category: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO categories (id, name, slug, display_order, parent_id, is_active)
		VALUES ($1, 'Go', 'go', 1, $2, TRUE)
		ON CONFLICT (slug) DO NOTHING`,
		uuid.New(), programmingID,
	); err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed child category: %w", err)
	}

	return programmingID, nil
}

func seedWelcomePost(ctx context.Context, tx pgx.Tx, categoryID, authorID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO posts (id, title, slug, content, summary, status, published_at, category_id, author_id)
		VALUES ($1, 'Welcome to the Blog', 'welcome-to-the-blog',
			'This is the first post. Edit or delete it, then start writing.',
			'The obligatory first post.', 'published', NOW(), $2, $3)
		ON CONFLICT DO NOTHING`,
		uuid.New(), categoryID, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to seed welcome post: %w", err)
	}
	return nil
}

func seedNavigation(ctx context.Context, tx pgx.Tx) error {
	items := []struct {
		label string
		href  string
		order int
	}{
		{"Home", "/", 1},
		{"Posts", "/posts", 2},
		{"About", "/about", 3},
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO navigation_items (id, label, href, display_order, is_active)
			SELECT $1, $2, $3, $4, TRUE
			WHERE NOT EXISTS (SELECT 1 FROM navigation_items WHERE label = $2)`,
			uuid.New(), item.label, item.href, item.order,
		); err != nil {
			return fmt.Errorf("failed to seed navigation item %s: %w", item.label, err)
		}
	}
	return nil
}
