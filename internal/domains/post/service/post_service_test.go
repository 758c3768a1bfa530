package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/post"
)

// ========================================
// STUBS
// ========================================

type stubPostRepo struct {
	byID map[uuid.UUID]*post.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[uuid.UUID]*post.Post)}
}

func (s *stubPostRepo) add(p *post.Post) *post.Post {
	s.byID[p.ID] = p
	return p
}

func (s *stubPostRepo) Create(_ context.Context, p *post.Post) error {
	s.byID[p.ID] = p
	return nil
}

func (s *stubPostRepo) Update(_ context.Context, p *post.Post) error {
	if _, ok := s.byID[p.ID]; !ok {
		return post.ErrPostNotFound
	}
	s.byID[p.ID] = p
	return nil
}

func (s *stubPostRepo) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, post.ErrPostNotFound
}

func (s *stubPostRepo) FindPublishedBySlug(_ context.Context, slug string) (*post.Post, error) {
	for _, p := range s.byID {
		if p.Slug == slug && p.IsPublished() {
			return p, nil
		}
	}
	return nil, post.ErrPostNotFound
}

func (s *stubPostRepo) ExistsBySlug(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for _, p := range s.byID {
		if p.Slug == slug && !p.IsDeleted && (excludeID == nil || p.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubPostRepo) ListPublished(_ context.Context, q post.ListPostsQuery) ([]*post.Post, int64, error) {
	var result []*post.Post
	for _, p := range s.byID {
		if !p.IsPublished() {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(q.Search)) {
			continue
		}
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (s *stubPostRepo) ListAll(_ context.Context, _ post.ListPostsQuery) ([]*post.Post, int64, error) {
	var result []*post.Post
	for _, p := range s.byID {
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

type stubCategoryRepo struct {
	byID map[uuid.UUID]*category.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[uuid.UUID]*category.Category)}
}

func (s *stubCategoryRepo) add(c *category.Category) *category.Category {
	s.byID[c.ID] = c
	return c
}

func (s *stubCategoryRepo) Create(_ context.Context, c *category.Category) error { s.add(c); return nil }
func (s *stubCategoryRepo) Update(_ context.Context, c *category.Category) error { s.add(c); return nil }
func (s *stubCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (s *stubCategoryRepo) FindBySlug(_ context.Context, _ string) (*category.Category, error) {
	return nil, category.ErrCategoryNotFound
}

func (s *stubCategoryRepo) ExistsBySlug(_ context.Context, _ string, _ *uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubCategoryRepo) ListActive(_ context.Context) ([]*category.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) ListAll(_ context.Context) ([]*category.Category, error) { return nil, nil }
func (s *stubCategoryRepo) ListChildren(_ context.Context, _ uuid.UUID) ([]*category.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) Search(_ context.Context, _ string) ([]*category.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) HasChildren(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubCategoryRepo) HasPosts(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

// ========================================
// TESTS
// ========================================

func validCreateRequest(categoryID uuid.UUID) post.CreatePostRequest {
	return post.CreatePostRequest{
		Title:      "Getting Started with Go",
		Content:    "Content long enough to pass validation.",
		Summary:    "A short intro.",
		CategoryID: categoryID.String(),
	}
}

func TestCreatePostDerivesSlugFromTitle(t *testing.T) {
	posts := newStubPostRepo()
	categories := newStubCategoryRepo()
	cat := categories.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(posts, categories)

	created, err := svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "getting-started-with-go", created.Slug)
	assert.Equal(t, post.StatusDraft, created.Status)
}

func TestCreatePostPublishNowGoesLiveImmediately(t *testing.T) {
	posts := newStubPostRepo()
	categories := newStubCategoryRepo()
	cat := categories.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(posts, categories)

	req := validCreateRequest(cat.ID)
	req.PublishNow = true

	created, err := svc.Create(context.Background(), req, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, post.StatusPublished, created.Status)
	require.NotNil(t, created.PublishedAt)
}

func TestCreatePostRejectsDuplicateSlug(t *testing.T) {
	posts := newStubPostRepo()
	categories := newStubCategoryRepo()
	cat := categories.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(posts, categories)

	_, err := svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())
	assert.ErrorIs(t, err, post.ErrDuplicateSlug)
}

func TestCreatePostRejectsInactiveCategory(t *testing.T) {
	posts := newStubPostRepo()
	categories := newStubCategoryRepo()
	cat := categories.add(category.NewRootCategory("Go", "go", "", 1))
	cat.Deactivate()
	svc := NewService(posts, categories)

	_, err := svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())

	assert.ErrorIs(t, err, post.ErrCategoryInactive)
}

func TestCreatePostRejectsMissingCategory(t *testing.T) {
	svc := NewService(newStubPostRepo(), newStubCategoryRepo())

	_, err := svc.Create(context.Background(), validCreateRequest(uuid.New()), uuid.New())

	assert.ErrorIs(t, err, post.ErrCategoryNotFound)
}

func TestDeletedPostSlugCanBeReused(t *testing.T) {
	posts := newStubPostRepo()
	categories := newStubCategoryRepo()
	cat := categories.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(posts, categories)

	first, err := svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), first.ID))

	second, err := svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, first.Slug, second.Slug)
}

func TestPublishIsIdempotentThroughService(t *testing.T) {
	posts := newStubPostRepo()
	categories := newStubCategoryRepo()
	cat := categories.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(posts, categories)

	created, err := svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())
	require.NoError(t, err)

	published, err := svc.Publish(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	again, err := svc.Publish(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, *again.PublishedAt)
}

func TestListPublishedHidesDrafts(t *testing.T) {
	posts := newStubPostRepo()
	categories := newStubCategoryRepo()
	cat := categories.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(posts, categories)

	draft, err := svc.Create(context.Background(), validCreateRequest(cat.ID), uuid.New())
	require.NoError(t, err)

	visible, total, err := svc.ListPublished(context.Background(), post.ListPostsQuery{})
	require.NoError(t, err)
	assert.Empty(t, visible)
	assert.Zero(t, total)

	_, err = svc.Publish(context.Background(), draft.ID)
	require.NoError(t, err)

	visible, total, err = svc.ListPublished(context.Background(), post.ListPostsQuery{})
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.EqualValues(t, 1, total)
}
