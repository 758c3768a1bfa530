package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// ========================================
// PUBLIC ENDPOINTS
// ========================================

// List handles GET /posts?category=&q=&page=&page_size=
func (h *PostHandler) List(c *gin.Context) {
	q := parseListQuery(c)

	posts, total, err := h.service.ListPublished(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if posts == nil {
		posts = []*post.Post{}
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, response.NewMeta(q.Page, q.PageSize, total))
}

// GetBySlug handles GET /posts/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListAll handles GET /admin/posts
func (h *PostHandler) ListAll(c *gin.Context) {
	q := parseListQuery(c)

	posts, total, err := h.service.ListAll(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if posts == nil {
		posts = []*post.Post{}
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, response.NewMeta(q.Page, q.PageSize, total))
}

// GetByID handles GET /admin/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles POST /admin/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
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

	created, err := h.service.Create(c.Request.Context(), req, authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /admin/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Publish handles PATCH /admin/posts/:id/publish
func (h *PostHandler) Publish(c *gin.Context) {
	h.transition(c, h.service.Publish)
}

// Unpublish handles PATCH /admin/posts/:id/unpublish
func (h *PostHandler) Unpublish(c *gin.Context) {
	h.transition(c, h.service.Unpublish)
}

// Restore handles PATCH /admin/posts/:id/restore
func (h *PostHandler) Restore(c *gin.Context) {
	h.transition(c, h.service.Restore)
}

// Delete handles DELETE /admin/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
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

func parseListQuery(c *gin.Context) post.ListPostsQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	q := post.ListPostsQuery{
		CategorySlug: c.Query("category"),
		Search:       c.Query("q"),
		Page:         page,
		PageSize:     pageSize,
	}
	q.Normalize()
	return q
}

func (h *PostHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*post.Post, error)) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	p, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *PostHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, post.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	case errors.Is(err, post.ErrCategoryInactive):
		response.UnprocessableEntity(c, "Category is not active", nil)
	case errors.Is(err, post.ErrDuplicateSlug):
		response.Conflict(c, "A post with this slug already exists")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
