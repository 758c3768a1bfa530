package navigation

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Public
	GetMenu(ctx context.Context) ([]*MenuResponse, error)

	// Admin
	ListAll(ctx context.Context) ([]*NavigationItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*NavigationItem, error)
	Create(ctx context.Context, req UpsertNavigationItemRequest) (*NavigationItem, error)
	Update(ctx context.Context, id uuid.UUID, req UpsertNavigationItemRequest) (*NavigationItem, error)
	Activate(ctx context.Context, id uuid.UUID) (*NavigationItem, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*NavigationItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
