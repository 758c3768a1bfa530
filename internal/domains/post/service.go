package post

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Public reads
	ListPublished(ctx context.Context, q ListPostsQuery) ([]*Post, int64, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Post, error)

	// Admin
	ListAll(ctx context.Context, q ListPostsQuery) ([]*Post, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Create(ctx context.Context, req CreatePostRequest, authorID uuid.UUID) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest) (*Post, error)
	Publish(ctx context.Context, id uuid.UUID) (*Post, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*Post, error)
}
