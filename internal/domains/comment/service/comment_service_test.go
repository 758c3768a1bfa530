package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
)

// ========================================
// STUBS
// ========================================

type stubCommentRepo struct {
	byID map[uuid.UUID]*comment.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byID: make(map[uuid.UUID]*comment.Comment)}
}

func (s *stubCommentRepo) Create(_ context.Context, c *comment.Comment) error {
	s.byID[c.ID] = c
	return nil
}

func (s *stubCommentRepo) Update(_ context.Context, c *comment.Comment) error {
	if _, ok := s.byID[c.ID]; !ok {
		return comment.ErrCommentNotFound
	}
	s.byID[c.ID] = c
	return nil
}

func (s *stubCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, comment.ErrCommentNotFound
}

func (s *stubCommentRepo) ListApprovedByPost(_ context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	var result []*comment.Comment
	for _, c := range s.byID {
		if c.PostID == postID && c.IsApproved && c.IsActive && !c.IsDeleted {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *stubCommentRepo) ListPending(_ context.Context) ([]*comment.Comment, error) {
	var result []*comment.Comment
	for _, c := range s.byID {
		if !c.IsApproved && c.IsActive && !c.IsDeleted {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *stubCommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	var result []*comment.Comment
	for _, c := range s.byID {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	return result, nil
}

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

func (s *stubPostRepo) Create(_ context.Context, p *post.Post) error { s.add(p); return nil }
func (s *stubPostRepo) Update(_ context.Context, p *post.Post) error { s.add(p); return nil }

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

func (s *stubPostRepo) ExistsBySlug(_ context.Context, _ string, _ *uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubPostRepo) ListPublished(_ context.Context, _ post.ListPostsQuery) ([]*post.Post, int64, error) {
	return nil, 0, nil
}

func (s *stubPostRepo) ListAll(_ context.Context, _ post.ListPostsQuery) ([]*post.Post, int64, error) {
	return nil, 0, nil
}

func publishedPost() *post.Post {
	p := post.NewPost("Hello", "hello", "Content long enough here.", "", uuid.New(), uuid.New())
	p.Publish()
	return p
}

// ========================================
// TESTS
// ========================================

func TestCreateCommentStartsUnapproved(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	p := posts.add(publishedPost())
	svc := NewService(comments, posts)

	author := uuid.New()
	created, err := svc.Create(context.Background(), p.Slug, author, comment.CreateCommentRequest{
		Content: "Great write-up!",
	})

	require.NoError(t, err)
	assert.False(t, created.IsApproved)
	assert.Equal(t, p.ID, created.PostID)
	assert.Equal(t, author, created.AuthorID)
}

func TestCreateCommentOnDraftPostFails(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	draft := post.NewPost("Draft", "draft", "Content long enough here.", "", uuid.New(), uuid.New())
	posts.add(draft)
	svc := NewService(comments, posts)

	_, err := svc.Create(context.Background(), "draft", uuid.New(), comment.CreateCommentRequest{
		Content: "First!",
	})

	assert.ErrorIs(t, err, comment.ErrPostNotFound)
}

func TestCreateReplyUnderOtherPostRejected(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	a := posts.add(publishedPost())
	b := post.NewPost("Other", "other", "Content long enough here.", "", uuid.New(), uuid.New())
	b.Publish()
	posts.add(b)

	svc := NewService(comments, posts)

	parent, err := svc.Create(context.Background(), a.Slug, uuid.New(), comment.CreateCommentRequest{
		Content: "On post A",
	})
	require.NoError(t, err)

	parentID := parent.ID.String()
	_, err = svc.Create(context.Background(), "other", uuid.New(), comment.CreateCommentRequest{
		ParentID: &parentID,
		Content:  "Reply on post B",
	})

	assert.ErrorIs(t, err, comment.ErrParentMismatch)
}

func TestGetThreadShowsOnlyApproved(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	p := posts.add(publishedPost())
	svc := NewService(comments, posts)

	first, err := svc.Create(context.Background(), p.Slug, uuid.New(), comment.CreateCommentRequest{
		Content: "Visible once approved",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), p.Slug, uuid.New(), comment.CreateCommentRequest{
		Content: "Still pending",
	})
	require.NoError(t, err)

	thread, err := svc.GetThread(context.Background(), p.Slug)
	require.NoError(t, err)
	assert.Empty(t, thread)

	_, err = svc.Approve(context.Background(), first.ID)
	require.NoError(t, err)

	thread, err = svc.GetThread(context.Background(), p.Slug)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, "Visible once approved", thread[0].Content)
}

func TestGetThreadNestsReplies(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	p := posts.add(publishedPost())
	svc := NewService(comments, posts)

	parent, err := svc.Create(context.Background(), p.Slug, uuid.New(), comment.CreateCommentRequest{
		Content: "Parent",
	})
	require.NoError(t, err)

	parentID := parent.ID.String()
	reply, err := svc.Create(context.Background(), p.Slug, uuid.New(), comment.CreateCommentRequest{
		ParentID: &parentID,
		Content:  "Reply",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), parent.ID)
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), reply.ID)
	require.NoError(t, err)

	thread, err := svc.GetThread(context.Background(), p.Slug)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	require.Len(t, thread[0].Children, 1)
	assert.Equal(t, "Reply", thread[0].Children[0].Content)
}

func TestApproveIsIdempotentThroughService(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	p := posts.add(publishedPost())
	svc := NewService(comments, posts)

	created, err := svc.Create(context.Background(), p.Slug, uuid.New(), comment.CreateCommentRequest{
		Content: "Approve me twice",
	})
	require.NoError(t, err)

	once, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	updated := once.UpdatedAt

	twice, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, twice.UpdatedAt)
}

func TestDeleteHidesCommentFromThread(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	p := posts.add(publishedPost())
	svc := NewService(comments, posts)

	created, err := svc.Create(context.Background(), p.Slug, uuid.New(), comment.CreateCommentRequest{
		Content: "Soon to be removed",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	thread, err := svc.GetThread(context.Background(), p.Slug)
	require.NoError(t, err)
	assert.Empty(t, thread)
}

func TestDeleteTwiceIsNoOp(t *testing.T) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo()
	p := posts.add(publishedPost())
	svc := NewService(comments, posts)

	created, err := svc.Create(context.Background(), p.Slug, uuid.New(), comment.CreateCommentRequest{
		Content: "Delete me twice",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	first := created.UpdatedAt

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, first, comments.byID[created.ID].UpdatedAt)
}

func TestDeleteMissingCommentFails(t *testing.T) {
	svc := NewService(newStubCommentRepo(), newStubPostRepo())

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, comment.ErrCommentNotFound)
}
