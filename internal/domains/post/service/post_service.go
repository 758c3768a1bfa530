package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/utils"
)

type postService struct {
	repo       post.Repository
	categories category.Repository
}

func NewService(repo post.Repository, categories category.Repository) post.Service {
	return &postService{repo: repo, categories: categories}
}

// ========================================
// PUBLIC READS
// ========================================

func (s *postService) ListPublished(ctx context.Context, q post.ListPostsQuery) ([]*post.Post, int64, error) {
	q.Normalize()
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.ListPublished(ctx, q)
}

func (s *postService) GetPublishedBySlug(ctx context.Context, slug string) (*post.Post, error) {
	return s.repo.FindPublishedBySlug(ctx, slug)
}

// ========================================
// ADMIN
// ========================================

func (s *postService) ListAll(ctx context.Context, q post.ListPostsQuery) ([]*post.Post, int64, error) {
	q.Normalize()
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.ListAll(ctx, q)
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, req post.CreatePostRequest, authorID uuid.UUID) (*post.Post, error) {
	// Step 1: the category must exist and be active
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	// Step 2: derive and normalize the slug
	slug := deriveSlug(req.Slug, req.Title)

	// Step 3: slug must be unique among non-deleted posts
	exists, err := s.repo.ExistsBySlug(ctx, slug, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, post.ErrDuplicateSlug
	}

	// Step 4: persist, as a draft unless the author publishes right away
	p := post.NewPost(req.Title, slug, req.Content, req.Summary, categoryID, authorID)
	if req.PublishNow {
		p.Publish()
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req post.UpdatePostRequest) (*post.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	slug := deriveSlug(req.Slug, req.Title)

	if slug != p.Slug {
		exists, err := s.repo.ExistsBySlug(ctx, slug, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, post.ErrDuplicateSlug
		}
	}

	p.Update(req.Title, slug, req.Content, req.Summary, categoryID)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *postService) Publish(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return s.transition(ctx, id, (*post.Post).Publish)
}

func (s *postService) Unpublish(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return s.transition(ctx, id, (*post.Post).Unpublish)
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.transition(ctx, id, (*post.Post).Delete)
	return err
}

func (s *postService) Restore(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return s.transition(ctx, id, (*post.Post).Restore)
}

// ========================================
// HELPERS
// ========================================

func deriveSlug(slug, title string) string {
	source := strings.TrimSpace(slug)
	if source == "" {
		source = title
	}
	return utils.SlugWithFallback(source)
}

// transition loads the post, applies a state change and persists it.
// The change methods are idempotent, so applying one that does nothing
// still writes the unchanged row, which is harmless.
func (s *postService) transition(ctx context.Context, id uuid.UUID, change func(*post.Post)) (*post.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *postService) resolveCategory(ctx context.Context, raw string) (uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, post.ErrCategoryNotFound
	}

	cat, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return uuid.Nil, post.ErrCategoryNotFound
		}
		return uuid.Nil, err
	}
	if !cat.IsActive {
		return uuid.Nil, post.ErrCategoryInactive
	}

	return categoryID, nil
}
