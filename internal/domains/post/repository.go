package post

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error

	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*Post, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	// ListPublished returns published, non-deleted posts ordered by
	// publication time descending, with the total for pagination.
	ListPublished(ctx context.Context, q ListPostsQuery) ([]*Post, int64, error)
	ListAll(ctx context.Context, q ListPostsQuery) ([]*Post, int64, error)
}
