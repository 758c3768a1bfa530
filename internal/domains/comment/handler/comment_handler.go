package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/shared/response"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// ========================================
// PUBLIC ENDPOINTS
// ========================================

// Create handles POST /posts/:slug/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	rawID, exists := c.Get("userID")
	authorID, ok := rawID.(uuid.UUID)
	if !exists || !ok {
		response.Unauthorized(c, "Invalid session")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.Param("slug"), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// GetThread handles GET /posts/:slug/comments
func (h *CommentHandler) GetThread(c *gin.Context) {
	thread, err := h.service.GetThread(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, thread)
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListPending handles GET /admin/comments/pending
func (h *CommentHandler) ListPending(c *gin.Context) {
	comments, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	if comments == nil {
		comments = []*comment.Comment{}
	}
	response.Success(c, http.StatusOK, comments)
}

// ListByPost handles GET /admin/comments?post_id=
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Query("post_id"))
	if err != nil {
		response.BadRequest(c, "Invalid post id", nil)
		return
	}

	comments, err := h.service.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if comments == nil {
		comments = []*comment.Comment{}
	}
	response.Success(c, http.StatusOK, comments)
}

// Approve handles PATCH /admin/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	h.transition(c, h.service.Approve)
}

// Reject handles PATCH /admin/comments/:id/reject
func (h *CommentHandler) Reject(c *gin.Context) {
	h.transition(c, h.service.Reject)
}

// Activate handles PATCH /admin/comments/:id/activate
func (h *CommentHandler) Activate(c *gin.Context) {
	h.transition(c, h.service.Activate)
}

// Deactivate handles PATCH /admin/comments/:id/deactivate
func (h *CommentHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.service.Deactivate)
}

// Delete handles DELETE /admin/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ========================================
// HELPERS
// ========================================

func (h *CommentHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*comment.Comment, error)) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *CommentHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, comment.ErrCommentNotFound):
		response.NotFound(c, "Comment not found")
	case errors.Is(err, comment.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, comment.ErrParentNotFound):
		response.NotFound(c, "Parent comment not found")
	case errors.Is(err, comment.ErrAuthorNotFound):
		response.NotFound(c, "Author not found")
	case errors.Is(err, comment.ErrParentMismatch):
		response.UnprocessableEntity(c, "Parent comment belongs to a different post", nil)
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
