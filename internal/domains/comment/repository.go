package comment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error

	FindByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// ListApprovedByPost returns approved, active comments for a post
	// in one flat query; the service threads them in memory.
	ListApprovedByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)
	ListPending(ctx context.Context) ([]*Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)
}
