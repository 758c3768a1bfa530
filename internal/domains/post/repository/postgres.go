package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post"
)

// Reads join categories so every post carries its category's name and
// slug, and public reads can require the category to be active.
const postColumns = `p.id, p.title, p.slug, p.content, p.summary, p.status, p.published_at, p.category_id, p.author_id, p.is_deleted, p.created_at, p.updated_at, c.name, c.slug`

const postJoins = `
		FROM posts p
		JOIN categories c ON c.id = p.category_id`

// A post is publicly visible only while its category is active.
const publicVisibility = `p.status = 'published' AND NOT p.is_deleted AND c.is_active`

const findPublishedBySlugQuery = `
		SELECT ` + postColumns + postJoins + `
		WHERE p.slug = LOWER($1) AND ` + publicVisibility

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresPostRepository{pool: pool}
}

func (r *postgresPostRepository) Create(ctx context.Context, p *post.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, slug, content, summary, status, published_at, category_id, author_id, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Title, p.Slug, p.Content, p.Summary, p.Status, p.PublishedAt, p.CategoryID, p.AuthorID, p.IsDeleted, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

func (r *postgresPostRepository) Update(ctx context.Context, p *post.Post) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, content = $4, summary = $5, status = $6, published_at = $7,
			category_id = $8, is_deleted = $9, updated_at = $10
		WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Content, p.Summary, p.Status, p.PublishedAt, p.CategoryID, p.IsDeleted, p.UpdatedAt,
	)
	if err != nil {
		return r.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return r.findOne(ctx, `
		SELECT `+postColumns+postJoins+`
		WHERE p.id = $1`, id)
}

func (r *postgresPostRepository) FindPublishedBySlug(ctx context.Context, slug string) (*post.Post, error) {
	return r.findOne(ctx, findPublishedBySlugQuery, slug)
}

func (r *postgresPostRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM posts
			WHERE slug = $1 AND NOT is_deleted AND ($2::uuid IS NULL OR id <> $2)
		)`, slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

func (r *postgresPostRepository) ListPublished(ctx context.Context, q post.ListPostsQuery) ([]*post.Post, int64, error) {
	return r.list(ctx, q, true)
}

func (r *postgresPostRepository) ListAll(ctx context.Context, q post.ListPostsQuery) ([]*post.Post, int64, error) {
	return r.list(ctx, q, false)
}

// ========================================
// HELPERS
// ========================================

// buildListQuery assembles the count and page queries for a post
// listing. args holds the filter parameters only; the page query
// additionally expects LIMIT and OFFSET appended after them.
func buildListQuery(q post.ListPostsQuery, publishedOnly bool) (countQuery, listQuery string, args []interface{}) {
	var conds []string

	if publishedOnly {
		conds = append(conds, publicVisibility)
	}
	if q.CategorySlug != "" {
		args = append(args, q.CategorySlug)
		conds = append(conds, fmt.Sprintf(`c.slug = LOWER($%d)`, len(args)))
	}
	if q.Search != "" {
		args = append(args, q.Search)
		conds = append(conds, fmt.Sprintf(`(p.title ILIKE '%%' || $%d || '%%' OR p.summary ILIKE '%%' || $%d || '%%')`, len(args), len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	countQuery = fmt.Sprintf(`SELECT COUNT(*)%s %s`, postJoins, where)

	order := `ORDER BY p.published_at DESC NULLS LAST, p.created_at DESC`
	listQuery = fmt.Sprintf(`SELECT %s%s %s %s LIMIT $%d OFFSET $%d`,
		postColumns, postJoins, where, order, len(args)+1, len(args)+2)

	return countQuery, listQuery, args
}

func (r *postgresPostRepository) list(ctx context.Context, q post.ListPostsQuery, publishedOnly bool) ([]*post.Post, int64, error) {
	countQuery, listQuery, args := buildListQuery(q, publishedOnly)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	args = append(args, q.PageSize, q.Offset())
	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var result []*post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}

	return result, total, rows.Err()
}

func (r *postgresPostRepository) findOne(ctx context.Context, query string, args ...interface{}) (*post.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Summary, &p.Status, &p.PublishedAt,
		&p.CategoryID, &p.AuthorID, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.CategorySlug,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	return &p, nil
}

func (r *postgresPostRepository) mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "idx_posts_slug" {
				return post.ErrDuplicateSlug
			}
		case "23503":
			if pgErr.ConstraintName == "posts_category_id_fkey" {
				return post.ErrCategoryNotFound
			}
		}
	}
	return fmt.Errorf("post repository: %w", err)
}
