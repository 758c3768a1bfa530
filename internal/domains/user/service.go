package user

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	GetProfile(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error

	// Admin
	List(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, active bool) (*User, error)
}
