package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/category"
)

// stubRepository is an in-memory category.Repository for service tests.
type stubRepository struct {
	byID map[uuid.UUID]*category.Category
}

func newStubRepository() *stubRepository {
	return &stubRepository{byID: make(map[uuid.UUID]*category.Category)}
}

func (s *stubRepository) add(c *category.Category) *category.Category {
	s.byID[c.ID] = c
	return c
}

func (s *stubRepository) Create(_ context.Context, c *category.Category) error {
	s.byID[c.ID] = c
	return nil
}

func (s *stubRepository) Update(_ context.Context, c *category.Category) error {
	if _, ok := s.byID[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	s.byID[c.ID] = c
	return nil
}

func (s *stubRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *stubRepository) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (s *stubRepository) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range s.byID {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (s *stubRepository) ExistsBySlug(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for _, c := range s.byID {
		if c.Slug == slug && (excludeID == nil || c.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepository) ListActive(_ context.Context) ([]*category.Category, error) {
	var result []*category.Category
	for _, c := range s.byID {
		if c.IsActive {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *stubRepository) ListAll(_ context.Context) ([]*category.Category, error) {
	var result []*category.Category
	for _, c := range s.byID {
		result = append(result, c)
	}
	return result, nil
}

func (s *stubRepository) ListChildren(_ context.Context, parentID uuid.UUID) ([]*category.Category, error) {
	var result []*category.Category
	for _, c := range s.byID {
		if c.ParentID != nil && *c.ParentID == parentID && c.IsActive {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *stubRepository) Search(_ context.Context, query string) ([]*category.Category, error) {
	var result []*category.Category
	for _, c := range s.byID {
		if c.IsActive && strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *stubRepository) HasChildren(_ context.Context, id uuid.UUID) (bool, error) {
	for _, c := range s.byID {
		if c.ParentID != nil && *c.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepository) HasPosts(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

// ========================================
// TESTS
// ========================================

func TestCreateDerivesSlugFromName(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Hello, World!",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello-world", created.Slug)
}

func TestCreateNormalizesProvidedSlug(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Entity Framework",
		Slug: "EF Core",
	})

	require.NoError(t, err)
	assert.Equal(t, "ef-core", created.Slug)
}

func TestCreateRejectsDuplicateNormalizedSlug(t *testing.T) {
	repo := newStubRepository()
	repo.add(category.NewRootCategory("Go", "go-lang", "", 1))
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Golang",
		Slug: "Go Lang",
	})

	assert.ErrorIs(t, err, category.ErrDuplicateSlug)
}

func TestCreateWithMissingParent(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name:     "Go",
		ParentID: uuid.New().String(),
	})

	assert.ErrorIs(t, err, category.ErrParentNotFound)
}

func TestGetTreeBuildsHierarchy(t *testing.T) {
	repo := newStubRepository()
	a := repo.add(category.NewRootCategory("A", "a-root", "", 1))
	b := repo.add(category.NewChildCategory("B", "b-child", "", 1, a.ID))
	repo.add(category.NewChildCategory("C", "c-leaf", "", 1, b.ID))
	svc := NewService(repo, nil)

	roots, err := svc.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "c-leaf", roots[0].Children[0].Children[0].Slug)
}

func TestGetTreeDropsOrphans(t *testing.T) {
	repo := newStubRepository()
	repo.add(category.NewRootCategory("Root", "root", "", 1))
	repo.add(category.NewChildCategory("Orphan", "orphan", "", 1, uuid.New()))
	svc := NewService(repo, nil)

	roots, err := svc.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "root", roots[0].Slug)
}

func TestGetTreeOrdersRootsByDisplayOrder(t *testing.T) {
	repo := newStubRepository()
	repo.add(category.NewRootCategory("Alpha", "alpha", "", 2))
	repo.add(category.NewRootCategory("Beta", "beta", "", 1))
	svc := NewService(repo, nil)

	roots, err := svc.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "beta", roots[0].Slug)
	assert.Equal(t, "alpha", roots[1].Slug)
}

func TestSearchBlankQueryReturnsEmpty(t *testing.T) {
	repo := newStubRepository()
	repo.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(repo, nil)

	results, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchMatchesNameSubstring(t *testing.T) {
	repo := newStubRepository()
	repo.add(category.NewRootCategory("EF Core", "ef-core", "", 1))
	repo.add(category.NewRootCategory("Rust", "rust", "", 2))
	svc := NewService(repo, nil)

	results, err := svc.Search(context.Background(), "ef")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ef-core", results[0].Slug)
}

func TestMoveRejectsSelfParent(t *testing.T) {
	repo := newStubRepository()
	c := repo.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(repo, nil)

	_, err := svc.Move(context.Background(), c.ID, &c.ID)

	assert.ErrorIs(t, err, category.ErrSelfParent)
}

func TestMoveRejectsOwnDescendant(t *testing.T) {
	repo := newStubRepository()
	root := repo.add(category.NewRootCategory("Root", "root", "", 1))
	child := repo.add(category.NewChildCategory("Child", "child", "", 1, root.ID))
	grandchild := repo.add(category.NewChildCategory("Grandchild", "grandchild", "", 1, child.ID))
	svc := NewService(repo, nil)

	_, err := svc.Move(context.Background(), root.ID, &grandchild.ID)

	assert.ErrorIs(t, err, category.ErrDescendantParent)
}

func TestMoveToValidParent(t *testing.T) {
	repo := newStubRepository()
	a := repo.add(category.NewRootCategory("A", "a-root", "", 1))
	b := repo.add(category.NewRootCategory("B", "b-root", "", 2))
	svc := NewService(repo, nil)

	moved, err := svc.Move(context.Background(), b.ID, &a.ID)

	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, a.ID, *moved.ParentID)
}

func TestDeleteRefusedWhileInUse(t *testing.T) {
	repo := newStubRepository()
	root := repo.add(category.NewRootCategory("Root", "root", "", 1))
	repo.add(category.NewChildCategory("Child", "child", "", 1, root.ID))
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), root.ID)

	assert.ErrorIs(t, err, category.ErrCategoryInUse)
}

func TestUpdateKeepingSlugDoesNotConflictWithItself(t *testing.T) {
	repo := newStubRepository()
	c := repo.add(category.NewRootCategory("Go", "go", "", 1))
	svc := NewService(repo, nil)

	updated, err := svc.Update(context.Background(), c.ID, category.UpdateCategoryRequest{
		Name: "Go Programming",
		Slug: "go",
	})

	require.NoError(t, err)
	assert.Equal(t, "go", updated.Slug)
	assert.Equal(t, "Go Programming", updated.Name)
}
