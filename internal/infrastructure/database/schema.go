package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ========================================
// SCHEMA BOOTSTRAP
// ========================================

const usersTable = `
CREATE TABLE IF NOT EXISTS users (
	id              UUID PRIMARY KEY,
	email           TEXT NOT NULL,
	password_hash   TEXT NOT NULL,
	name            TEXT NOT NULL,
	role            TEXT NOT NULL DEFAULT 'user',
	age             INTEGER,
	gender          TEXT NOT NULL DEFAULT '',
	city            TEXT NOT NULL DEFAULT '',
	avatar_url      TEXT NOT NULL DEFAULT '',
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	last_login_at   TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (LOWER(email));
`

const categoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
	id              UUID PRIMARY KEY,
	name            TEXT NOT NULL,
	slug            TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	display_order   INTEGER NOT NULL DEFAULT 0,
	parent_id       UUID REFERENCES categories(id) ON DELETE RESTRICT,
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug ON categories (slug);
CREATE INDEX IF NOT EXISTS idx_categories_parent ON categories (parent_id);
`

const postsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id              UUID PRIMARY KEY,
	title           TEXT NOT NULL,
	slug            TEXT NOT NULL,
	content         TEXT NOT NULL,
	summary         TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT 'draft',
	published_at    TIMESTAMPTZ,
	category_id     UUID NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
	author_id       UUID NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
	is_deleted      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_posts_slug ON posts (slug) WHERE NOT is_deleted;
CREATE INDEX IF NOT EXISTS idx_posts_category ON posts (category_id);
CREATE INDEX IF NOT EXISTS idx_posts_status ON posts (status) WHERE NOT is_deleted;
`

const commentsTable = `
CREATE TABLE IF NOT EXISTS comments (
	id              UUID PRIMARY KEY,
	post_id         UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	parent_id       UUID REFERENCES comments(id) ON DELETE CASCADE,
	author_id       UUID NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
	content         TEXT NOT NULL,
	is_approved     BOOLEAN NOT NULL DEFAULT FALSE,
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	is_deleted      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id);
`

const navigationItemsTable = `
CREATE TABLE IF NOT EXISTS navigation_items (
	id              UUID PRIMARY KEY,
	label           TEXT NOT NULL,
	href            TEXT NOT NULL,
	display_order   INTEGER NOT NULL DEFAULT 0,
	parent_id       UUID REFERENCES navigation_items(id) ON DELETE RESTRICT,
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_navigation_parent ON navigation_items (parent_id);
`

// EnsureSchema creates every table and index the application needs.
// All statements are idempotent, so running it on every startup is safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		usersTable,
		categoriesTable,
		postsTable,
		commentsTable,
		navigationItemsTable,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

// EnsureNavigationTable creates only the navigation table. The
// navigation repository calls this when a query hits a missing table,
// since navigation was added after the original schema shipped.
func EnsureNavigationTable(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, navigationItemsTable); err != nil {
		return fmt.Errorf("failed to create navigation_items table: %w", err)
	}
	return nil
}
