package category

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Public reads
	GetTree(ctx context.Context) ([]*TreeResponse, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	GetChildren(ctx context.Context, parentID uuid.UUID) ([]*Category, error)
	ListActiveFlat(ctx context.Context) ([]*Category, error)
	Search(ctx context.Context, query string) ([]*Category, error)

	// Admin writes
	Create(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*Category, error)
	Move(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) (*Category, error)
	Activate(ctx context.Context, id uuid.UUID) (*Category, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
}
