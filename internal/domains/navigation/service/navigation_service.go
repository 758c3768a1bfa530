package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/navigation"
	"blog-backend/internal/shared/tree"
	pkgcache "blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	menuCacheKey = "navigation:menu"
	menuCacheTTL = 5 * time.Minute
)

type navigationService struct {
	repo  navigation.Repository
	cache pkgcache.Cache
}

func NewService(repo navigation.Repository, cache pkgcache.Cache) navigation.Service {
	return &navigationService{repo: repo, cache: cache}
}

func (s *navigationService) GetMenu(ctx context.Context) ([]*navigation.MenuResponse, error) {
	if s.cache != nil {
		var cached []*navigation.MenuResponse
		if err := s.cache.Get(ctx, menuCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	flat, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := toMenuResponses(tree.Build(flat))

	if s.cache != nil {
		if err := s.cache.Set(ctx, menuCacheKey, result, menuCacheTTL); err != nil {
			logger.Warn("failed to cache navigation menu", err)
		}
	}

	return result, nil
}

func (s *navigationService) ListAll(ctx context.Context) ([]*navigation.NavigationItem, error) {
	return s.repo.ListAll(ctx)
}

func (s *navigationService) GetByID(ctx context.Context, id uuid.UUID) (*navigation.NavigationItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *navigationService) Create(ctx context.Context, req navigation.UpsertNavigationItemRequest) (*navigation.NavigationItem, error) {
	parentID, err := s.resolveParent(ctx, req, nil)
	if err != nil {
		return nil, err
	}

	item := navigation.NewNavigationItem(req.Label, req.Href, req.DisplayOrder, parentID)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx)

	return item, nil
}

func (s *navigationService) Update(ctx context.Context, id uuid.UUID, req navigation.UpsertNavigationItemRequest) (*navigation.NavigationItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parentID, err := s.resolveParent(ctx, req, &id)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Label, req.Href, req.DisplayOrder, parentID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx)

	return item, nil
}

func (s *navigationService) Activate(ctx context.Context, id uuid.UUID) (*navigation.NavigationItem, error) {
	return s.setActive(ctx, id, true)
}

func (s *navigationService) Deactivate(ctx context.Context, id uuid.UUID) (*navigation.NavigationItem, error) {
	return s.setActive(ctx, id, false)
}

func (s *navigationService) Delete(ctx context.Context, id uuid.UUID) error {
	hasChildren, err := s.repo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return navigation.ErrItemInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)

	return nil
}

// ========================================
// HELPERS
// ========================================

func (s *navigationService) setActive(ctx context.Context, id uuid.UUID, active bool) (*navigation.NavigationItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		item.Activate()
	} else {
		item.Deactivate()
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx)

	return item, nil
}

func (s *navigationService) resolveParent(ctx context.Context, req navigation.UpsertNavigationItemRequest, selfID *uuid.UUID) (*uuid.UUID, error) {
	parentID, err := req.ParsedParentID()
	if err != nil {
		return nil, navigation.ErrParentNotFound
	}
	if parentID == nil {
		return nil, nil
	}
	if selfID != nil && *parentID == *selfID {
		return nil, navigation.ErrSelfParent
	}
	if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
		return nil, navigation.ErrParentNotFound
	}
	return parentID, nil
}

func (s *navigationService) invalidateMenu(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, menuCacheKey); err != nil {
		logger.Warn("failed to invalidate navigation menu cache", err)
	}
}

func toMenuResponses(nodes []*tree.TreeNode[*navigation.NavigationItem]) []*navigation.MenuResponse {
	result := make([]*navigation.MenuResponse, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, &navigation.MenuResponse{
			ID:           n.Item.ID,
			Label:        n.Item.Label,
			Href:         n.Item.Href,
			DisplayOrder: n.Item.DisplayOrder,
			Children:     toMenuResponses(n.Children),
		})
	}
	return result
}
