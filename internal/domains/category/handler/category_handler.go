package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ========================================
// PUBLIC ENDPOINTS
// ========================================

// GetTree handles GET /categories/tree
func (h *CategoryHandler) GetTree(c *gin.Context) {
	tree, err := h.service.GetTree(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tree)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.ListActiveFlat(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// GetBySlug handles GET /categories/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetChildren handles GET /categories/:slug/children
func (h *CategoryHandler) GetChildren(c *gin.Context) {
	parent, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	children, err := h.service.GetChildren(c.Request.Context(), parent.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, children)
}

// Search handles GET /categories/search?q=
func (h *CategoryHandler) Search(c *gin.Context) {
	results, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, results)
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListAll handles GET /admin/categories
func (h *CategoryHandler) ListAll(c *gin.Context) {
	categories, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// Create handles POST /admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req category.UpdateCategoryRequest
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

// Move handles PATCH /admin/categories/:id/move
func (h *CategoryHandler) Move(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req category.MoveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	parentID, err := req.ParsedParentID()
	if err != nil {
		response.BadRequest(c, "Invalid parent id", nil)
		return
	}

	moved, err := h.service.Move(c.Request.Context(), id, parentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, moved)
}

// Activate handles PATCH /admin/categories/:id/activate
func (h *CategoryHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate handles PATCH /admin/categories/:id/deactivate
func (h *CategoryHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

// Delete handles DELETE /admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
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

func (h *CategoryHandler) setActive(c *gin.Context, active bool) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var (
		result *category.Category
		err    error
	)
	if active {
		result, err = h.service.Activate(c.Request.Context(), id)
	} else {
		result, err = h.service.Deactivate(c.Request.Context(), id)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *CategoryHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	case errors.Is(err, category.ErrParentNotFound):
		response.NotFound(c, "Parent category not found")
	case errors.Is(err, category.ErrDuplicateSlug):
		response.Conflict(c, "A category with this slug already exists")
	case errors.Is(err, category.ErrSelfParent):
		response.UnprocessableEntity(c, "A category cannot be its own parent", nil)
	case errors.Is(err, category.ErrDescendantParent):
		response.UnprocessableEntity(c, "A category cannot be moved under its own descendant", nil)
	case errors.Is(err, category.ErrCategoryInUse):
		response.Conflict(c, "Category has children or posts and cannot be deleted")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
