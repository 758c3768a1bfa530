package category

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	// ListActive returns every active category in one flat query; the
	// service assembles the tree in memory.
	ListActive(ctx context.Context) ([]*Category, error)
	ListAll(ctx context.Context) ([]*Category, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]*Category, error)
	Search(ctx context.Context, query string) ([]*Category, error)

	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
	HasPosts(ctx context.Context, id uuid.UUID) (bool, error)
}
