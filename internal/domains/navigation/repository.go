package navigation

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, item *NavigationItem) error
	Update(ctx context.Context, item *NavigationItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*NavigationItem, error)
	ListActive(ctx context.Context) ([]*NavigationItem, error)
	ListAll(ctx context.Context) ([]*NavigationItem, error)
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
}
