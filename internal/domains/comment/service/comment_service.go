package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/tree"
)

type commentService struct {
	repo  comment.Repository
	posts post.Repository
}

func NewService(repo comment.Repository, posts post.Repository) comment.Service {
	return &commentService{repo: repo, posts: posts}
}

// ========================================
// PUBLIC
// ========================================

func (s *commentService) Create(ctx context.Context, postSlug string, authorID uuid.UUID, req comment.CreateCommentRequest) (*comment.Comment, error) {
	// Step 1: the target post must be publicly visible
	p, err := s.posts.FindPublishedBySlug(ctx, postSlug)
	if err != nil {
		return nil, comment.ErrPostNotFound
	}

	// Step 2: resolve the parent, which must belong to the same post
	parentID, err := req.ParsedParentID()
	if err != nil {
		return nil, comment.ErrParentNotFound
	}
	if parentID != nil {
		parent, err := s.repo.FindByID(ctx, *parentID)
		if err != nil {
			return nil, comment.ErrParentNotFound
		}
		if parent.PostID != p.ID {
			return nil, comment.ErrParentMismatch
		}
	}

	// Step 3: persist unapproved, awaiting moderation
	c := comment.NewComment(p.ID, parentID, authorID, req.Content)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *commentService) GetThread(ctx context.Context, postSlug string) ([]*comment.ThreadResponse, error) {
	p, err := s.posts.FindPublishedBySlug(ctx, postSlug)
	if err != nil {
		return nil, comment.ErrPostNotFound
	}

	flat, err := s.repo.ListApprovedByPost(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return toThreadResponses(tree.Build(flat)), nil
}

// ========================================
// ADMIN MODERATION
// ========================================

func (s *commentService) ListPending(ctx context.Context) ([]*comment.Comment, error) {
	return s.repo.ListPending(ctx)
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *commentService) Approve(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return s.transition(ctx, id, (*comment.Comment).Approve)
}

func (s *commentService) Reject(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return s.transition(ctx, id, (*comment.Comment).Reject)
}

func (s *commentService) Activate(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return s.transition(ctx, id, (*comment.Comment).Activate)
}

func (s *commentService) Deactivate(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return s.transition(ctx, id, (*comment.Comment).Deactivate)
}

// Delete soft-deletes the comment. Its replies stay stored but vanish
// from public threads, since an orphaned subtree is unreachable.
func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.transition(ctx, id, (*comment.Comment).Delete)
	return err
}

// ========================================
// HELPERS
// ========================================

func (s *commentService) transition(ctx context.Context, id uuid.UUID, change func(*comment.Comment)) (*comment.Comment, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change(c)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func toThreadResponses(nodes []*tree.TreeNode[*comment.Comment]) []*comment.ThreadResponse {
	result := make([]*comment.ThreadResponse, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, &comment.ThreadResponse{
			ID:         n.Item.ID,
			AuthorName: n.Item.AuthorName,
			Content:    n.Item.Content,
			CreatedAt:  n.Item.CreatedAt.Format(time.RFC3339),
			Children:   toThreadResponses(n.Children),
		})
	}
	return result
}
