package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

const bcryptCost = 12

type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwt: jwtManager}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Step 1: reject duplicates; the unique index backstops the race
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	// Step 2: hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	// Step 3: persist
	u := user.NewUser(email, string(hash), req.Name)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Step 1: look up the account; a missing account reads the same as
	// a wrong password to the caller
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, user.ErrAccountDisabled
	}

	// Step 2: verify the password
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// Step 3: issue the token
	token, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.Name, u.Role)
	if err != nil {
		return nil, err
	}

	// Step 4: record the login time. Best effort: a failed write must
	// not fail the login itself.
	go func(id uuid.UUID) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.UpdateLastLogin(ctx, id); err != nil {
			logger.Warn("failed to record last login", err)
		}
	}(u.ID)

	return &user.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      u,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req user.UpdateProfileRequest) (*user.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Name = req.Name
	u.Age = req.Age
	u.Gender = req.Gender
	u.City = req.City
	u.AvatarURL = req.AvatarURL
	u.Touch()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req user.ChangePasswordRequest) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.Touch()

	return s.repo.Update(ctx, u)
}

// ========================================
// ADMIN
// ========================================

func (s *userService) List(ctx context.Context) ([]*user.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*user.User, error) {
	if role != user.RoleUser && role != user.RoleAdmin {
		return nil, user.ErrInvalidRole
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Role = role
	u.Touch()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *userService) UpdateStatus(ctx context.Context, id uuid.UUID, active bool) (*user.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.IsActive != active {
		u.IsActive = active
		u.Touch()
		if err := s.repo.Update(ctx, u); err != nil {
			return nil, err
		}
	}

	return u, nil
}
