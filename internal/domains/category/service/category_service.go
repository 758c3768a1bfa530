package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/tree"
	"blog-backend/internal/shared/utils"
	pkgcache "blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	treeCacheKey = "categories:tree"
	treeCacheTTL = 5 * time.Minute
)

type categoryService struct {
	repo  category.Repository
	cache pkgcache.Cache
}

// NewService builds the category service. cache may be nil, in which
// case every read goes to the database.
func NewService(repo category.Repository, cache pkgcache.Cache) category.Service {
	return &categoryService{repo: repo, cache: cache}
}

// ========================================
// PUBLIC READS
// ========================================

func (s *categoryService) GetTree(ctx context.Context) ([]*category.TreeResponse, error) {
	// Step 1: serve from cache when possible
	if s.cache != nil {
		var cached []*category.TreeResponse
		if err := s.cache.Get(ctx, treeCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	// Step 2: one flat query, tree assembled in memory
	flat, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	nodes := tree.Build(flat)
	result := toTreeResponses(nodes)

	// Step 3: refresh cache, best effort
	if s.cache != nil {
		if err := s.cache.Set(ctx, treeCacheKey, result, treeCacheTTL); err != nil {
			logger.Warn("failed to cache category tree", err)
		}
	}

	return result, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *categoryService) GetChildren(ctx context.Context, parentID uuid.UUID) ([]*category.Category, error) {
	return s.repo.ListChildren(ctx, parentID)
}

func (s *categoryService) ListActiveFlat(ctx context.Context) ([]*category.Category, error) {
	return s.repo.ListActive(ctx)
}

// Search returns active categories matching the query. A blank query
// matches nothing rather than everything.
func (s *categoryService) Search(ctx context.Context, query string) ([]*category.Category, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*category.Category{}, nil
	}
	return s.repo.Search(ctx, query)
}

// ========================================
// ADMIN WRITES
// ========================================

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	// Step 1: derive and normalize the slug
	slug := deriveSlug(req.Slug, req.Name)

	// Step 2: reject duplicates before hitting the unique index
	exists, err := s.repo.ExistsBySlug(ctx, slug, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, category.ErrDuplicateSlug
	}

	// Step 3: resolve the parent, if any
	var c *category.Category
	if req.ParentID != "" {
		parentID, err := uuid.Parse(req.ParentID)
		if err != nil {
			return nil, category.ErrParentNotFound
		}
		if _, err := s.repo.FindByID(ctx, parentID); err != nil {
			return nil, category.ErrParentNotFound
		}
		c = category.NewChildCategory(req.Name, slug, req.Description, req.DisplayOrder, parentID)
	} else {
		c = category.NewRootCategory(req.Name, slug, req.Description, req.DisplayOrder)
	}

	// Step 4: persist and invalidate the tree cache
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateTree(ctx)

	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req category.UpdateCategoryRequest) (*category.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := deriveSlug(req.Slug, req.Name)

	if slug != c.Slug {
		exists, err := s.repo.ExistsBySlug(ctx, slug, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, category.ErrDuplicateSlug
		}
	}

	c.Update(req.Name, slug, req.Description, req.DisplayOrder)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateTree(ctx)

	return c, nil
}

// Move reparents a category. It refuses self-parenting and moves under
// the category's own descendant, which would detach the subtree.
func (s *categoryService) Move(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) (*category.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		if *parentID == id {
			return nil, category.ErrSelfParent
		}
		if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
			return nil, category.ErrParentNotFound
		}
		descendant, err := s.isDescendant(ctx, id, *parentID)
		if err != nil {
			return nil, err
		}
		if descendant {
			return nil, category.ErrDescendantParent
		}
	}

	if err := c.MoveTo(parentID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateTree(ctx)

	return c, nil
}

func (s *categoryService) Activate(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.setActive(ctx, id, true)
}

func (s *categoryService) Deactivate(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.setActive(ctx, id, false)
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	// Step 1: refuse deletion while anything references the category
	hasChildren, err := s.repo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return category.ErrCategoryInUse
	}

	hasPosts, err := s.repo.HasPosts(ctx, id)
	if err != nil {
		return err
	}
	if hasPosts {
		return category.ErrCategoryInUse
	}

	// Step 2: delete; the FK constraints backstop the checks above
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateTree(ctx)

	return nil
}

func (s *categoryService) ListAll(ctx context.Context) ([]*category.Category, error) {
	return s.repo.ListAll(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// ========================================
// HELPERS
// ========================================

func (s *categoryService) setActive(ctx context.Context, id uuid.UUID, active bool) (*category.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateTree(ctx)

	return c, nil
}

// isDescendant reports whether candidate sits below root in the tree.
// It walks parent links upward from candidate, which is bounded by the
// tree depth.
func (s *categoryService) isDescendant(ctx context.Context, root, candidate uuid.UUID) (bool, error) {
	current := candidate
	for i := 0; i < 64; i++ {
		node, err := s.repo.FindByID(ctx, current)
		if err != nil {
			return false, err
		}
		if node.ParentID == nil {
			return false, nil
		}
		if *node.ParentID == root {
			return true, nil
		}
		current = *node.ParentID
	}
	return false, nil
}

// deriveSlug normalizes the requested slug, falling back to the name
// when no slug was supplied.
func deriveSlug(slug, name string) string {
	source := strings.TrimSpace(slug)
	if source == "" {
		source = name
	}
	return utils.SlugWithFallback(source)
}

func (s *categoryService) invalidateTree(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, treeCacheKey); err != nil {
		logger.Warn("failed to invalidate category tree cache", err)
	}
}

func toTreeResponses(nodes []*tree.TreeNode[*category.Category]) []*category.TreeResponse {
	result := make([]*category.TreeResponse, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, &category.TreeResponse{
			ID:           n.Item.ID,
			Name:         n.Item.Name,
			Slug:         n.Item.Slug,
			Description:  n.Item.Description,
			DisplayOrder: n.Item.DisplayOrder,
			Children:     toTreeResponses(n.Children),
		})
	}
	return result
}
