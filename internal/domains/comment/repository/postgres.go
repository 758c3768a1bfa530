package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment"
)

// Reads join users and posts so every comment carries its author's
// display name and the title of the post it belongs to.
const commentColumns = `c.id, c.post_id, c.parent_id, c.author_id, c.content, c.is_approved, c.is_active, c.is_deleted, c.created_at, c.updated_at, u.name, p.title`

const commentJoins = `
		FROM comments c
		JOIN users u ON u.id = c.author_id
		JOIN posts p ON p.id = c.post_id`

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, post_id, parent_id, author_id, content, is_approved, is_active, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.PostID, c.ParentID, c.AuthorID, c.Content, c.IsApproved, c.IsActive, c.IsDeleted, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			switch pgErr.ConstraintName {
			case "comments_post_id_fkey":
				return comment.ErrPostNotFound
			case "comments_parent_id_fkey":
				return comment.ErrParentNotFound
			case "comments_author_id_fkey":
				return comment.ErrAuthorNotFound
			}
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, c *comment.Comment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET is_approved = $2, is_active = $3, is_deleted = $4, updated_at = $5
		WHERE id = $1`,
		c.ID, c.IsApproved, c.IsActive, c.IsDeleted, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (r *postgresCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	var c comment.Comment
	err := r.pool.QueryRow(ctx,
		`SELECT `+commentColumns+commentJoins+`
		WHERE c.id = $1`, id,
	).Scan(
		&c.ID, &c.PostID, &c.ParentID, &c.AuthorID, &c.Content,
		&c.IsApproved, &c.IsActive, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
		&c.AuthorName, &c.PostTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return &c, nil
}

func (r *postgresCommentRepository) ListApprovedByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	return r.findMany(ctx, `
		SELECT `+commentColumns+commentJoins+`
		WHERE c.post_id = $1 AND c.is_approved AND c.is_active AND NOT c.is_deleted
		ORDER BY c.created_at`, postID)
}

func (r *postgresCommentRepository) ListPending(ctx context.Context) ([]*comment.Comment, error) {
	return r.findMany(ctx, `
		SELECT `+commentColumns+commentJoins+`
		WHERE NOT c.is_approved AND c.is_active AND NOT c.is_deleted
		ORDER BY c.created_at`)
}

func (r *postgresCommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	return r.findMany(ctx, `
		SELECT `+commentColumns+commentJoins+`
		WHERE c.post_id = $1
		ORDER BY c.created_at`, postID)
}

func (r *postgresCommentRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*comment.Comment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var result []*comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.ParentID, &c.AuthorID, &c.Content,
			&c.IsApproved, &c.IsActive, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
			&c.AuthorName, &c.PostTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}
