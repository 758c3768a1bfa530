package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/navigation"
)

type stubNavigationRepo struct {
	byID map[uuid.UUID]*navigation.NavigationItem
}

func newStubNavigationRepo() *stubNavigationRepo {
	return &stubNavigationRepo{byID: make(map[uuid.UUID]*navigation.NavigationItem)}
}

func (s *stubNavigationRepo) add(item *navigation.NavigationItem) *navigation.NavigationItem {
	s.byID[item.ID] = item
	return item
}

func (s *stubNavigationRepo) Create(_ context.Context, item *navigation.NavigationItem) error {
	s.byID[item.ID] = item
	return nil
}

func (s *stubNavigationRepo) Update(_ context.Context, item *navigation.NavigationItem) error {
	if _, ok := s.byID[item.ID]; !ok {
		return navigation.ErrItemNotFound
	}
	s.byID[item.ID] = item
	return nil
}

func (s *stubNavigationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return navigation.ErrItemNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *stubNavigationRepo) FindByID(_ context.Context, id uuid.UUID) (*navigation.NavigationItem, error) {
	if item, ok := s.byID[id]; ok {
		return item, nil
	}
	return nil, navigation.ErrItemNotFound
}

func (s *stubNavigationRepo) ListActive(_ context.Context) ([]*navigation.NavigationItem, error) {
	var result []*navigation.NavigationItem
	for _, item := range s.byID {
		if item.IsActive {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *stubNavigationRepo) ListAll(_ context.Context) ([]*navigation.NavigationItem, error) {
	var result []*navigation.NavigationItem
	for _, item := range s.byID {
		result = append(result, item)
	}
	return result, nil
}

func (s *stubNavigationRepo) HasChildren(_ context.Context, id uuid.UUID) (bool, error) {
	for _, item := range s.byID {
		if item.ParentID != nil && *item.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

// ========================================
// TESTS
// ========================================

func TestGetMenuOrdersByDisplayOrder(t *testing.T) {
	repo := newStubNavigationRepo()
	repo.add(navigation.NewNavigationItem("About", "/about", 3, nil))
	repo.add(navigation.NewNavigationItem("Home", "/", 1, nil))
	repo.add(navigation.NewNavigationItem("Posts", "/posts", 2, nil))
	svc := NewService(repo, nil)

	menu, err := svc.GetMenu(context.Background())

	require.NoError(t, err)
	require.Len(t, menu, 3)
	assert.Equal(t, "Home", menu[0].Label)
	assert.Equal(t, "Posts", menu[1].Label)
	assert.Equal(t, "About", menu[2].Label)
}

func TestGetMenuHidesInactiveItems(t *testing.T) {
	repo := newStubNavigationRepo()
	repo.add(navigation.NewNavigationItem("Home", "/", 1, nil))
	hidden := repo.add(navigation.NewNavigationItem("Hidden", "/hidden", 2, nil))
	hidden.Deactivate()
	svc := NewService(repo, nil)

	menu, err := svc.GetMenu(context.Background())

	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Home", menu[0].Label)
}

func TestGetMenuNestsChildren(t *testing.T) {
	repo := newStubNavigationRepo()
	parent := repo.add(navigation.NewNavigationItem("Docs", "/docs", 1, nil))
	repo.add(navigation.NewNavigationItem("API", "/docs/api", 1, &parent.ID))
	svc := NewService(repo, nil)

	menu, err := svc.GetMenu(context.Background())

	require.NoError(t, err)
	require.Len(t, menu, 1)
	require.Len(t, menu[0].Children, 1)
	assert.Equal(t, "API", menu[0].Children[0].Label)
}

func TestUpdateRejectsSelfParent(t *testing.T) {
	repo := newStubNavigationRepo()
	item := repo.add(navigation.NewNavigationItem("Home", "/", 1, nil))
	svc := NewService(repo, nil)

	selfID := item.ID.String()
	_, err := svc.Update(context.Background(), item.ID, navigation.UpsertNavigationItemRequest{
		Label:    "Home",
		Href:     "/",
		ParentID: &selfID,
	})

	assert.ErrorIs(t, err, navigation.ErrSelfParent)
}

func TestDeleteRefusedWithChildren(t *testing.T) {
	repo := newStubNavigationRepo()
	parent := repo.add(navigation.NewNavigationItem("Docs", "/docs", 1, nil))
	repo.add(navigation.NewNavigationItem("API", "/docs/api", 1, &parent.ID))
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), parent.ID)

	assert.ErrorIs(t, err, navigation.ErrItemInUse)
}

func TestCreateWithMissingParent(t *testing.T) {
	svc := NewService(newStubNavigationRepo(), nil)

	missing := uuid.New().String()
	_, err := svc.Create(context.Background(), navigation.UpsertNavigationItemRequest{
		Label:    "Child",
		Href:     "/child",
		ParentID: &missing,
	})

	assert.ErrorIs(t, err, navigation.ErrParentNotFound)
}
