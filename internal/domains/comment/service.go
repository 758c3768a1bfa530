package comment

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Public
	Create(ctx context.Context, postSlug string, authorID uuid.UUID, req CreateCommentRequest) (*Comment, error)
	GetThread(ctx context.Context, postSlug string) ([]*ThreadResponse, error)

	// Admin moderation
	ListPending(ctx context.Context) ([]*Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)
	Approve(ctx context.Context, id uuid.UUID) (*Comment, error)
	Reject(ctx context.Context, id uuid.UUID) (*Comment, error)
	Activate(ctx context.Context, id uuid.UUID) (*Comment, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
