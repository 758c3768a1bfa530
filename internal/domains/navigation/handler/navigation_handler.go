package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/navigation"
	"blog-backend/internal/shared/response"
)

type NavigationHandler struct {
	service navigation.Service
}

func NewNavigationHandler(service navigation.Service) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// GetMenu handles GET /navigation
func (h *NavigationHandler) GetMenu(c *gin.Context) {
	menu, err := h.service.GetMenu(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, menu)
}

// ListAll handles GET /admin/navigation
func (h *NavigationHandler) ListAll(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetByID handles GET /admin/navigation/:id
func (h *NavigationHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Create handles POST /admin/navigation
func (h *NavigationHandler) Create(c *gin.Context) {
	var req navigation.UpsertNavigationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// Update handles PUT /admin/navigation/:id
func (h *NavigationHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req navigation.UpsertNavigationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Activate handles PATCH /admin/navigation/:id/activate
func (h *NavigationHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate handles PATCH /admin/navigation/:id/deactivate
func (h *NavigationHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

// Delete handles DELETE /admin/navigation/:id
func (h *NavigationHandler) Delete(c *gin.Context) {
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

func (h *NavigationHandler) setActive(c *gin.Context, active bool) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var (
		item *navigation.NavigationItem
		err  error
	)
	if active {
		item, err = h.service.Activate(c.Request.Context(), id)
	} else {
		item, err = h.service.Deactivate(c.Request.Context(), id)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *NavigationHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid navigation item id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *NavigationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, navigation.ErrItemNotFound):
		response.NotFound(c, "Navigation item not found")
	case errors.Is(err, navigation.ErrParentNotFound):
		response.NotFound(c, "Parent navigation item not found")
	case errors.Is(err, navigation.ErrSelfParent):
		response.UnprocessableEntity(c, "A navigation item cannot be its own parent", nil)
	case errors.Is(err, navigation.ErrItemInUse):
		response.Conflict(c, "Navigation item has children and cannot be deleted")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
