package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// AUTH ENDPOINTS
// ========================================

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ========================================
// PROFILE ENDPOINTS
// ========================================

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := h.currentUserID(c)
	if !ok {
		return
	}

	u, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// ChangePassword handles PUT /users/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"changed": true})
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// UpdateUserRole handles PUT /admin/users/:id/role
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req user.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Validation failed", err)
		return
	}

	u, err := h.service.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// UpdateUserStatus handles PUT /admin/users/:id/status
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req user.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", nil)
		return
	}

	u, err := h.service.UpdateStatus(c.Request.Context(), id, req.IsActive)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// ========================================
// HELPERS
// ========================================

func (h *UserHandler) currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rawID, exists := c.Get("userID")
	id, ok := rawID.(uuid.UUID)
	if !exists || !ok {
		response.Unauthorized(c, "Invalid session")
		return uuid.Nil, false
	}
	return id, true
}

func (h *UserHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		response.Conflict(c, "Email is already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, user.ErrAccountDisabled):
		response.Forbidden(c, "Account is disabled")
	case errors.Is(err, user.ErrInvalidRole):
		response.BadRequest(c, "Invalid role", nil)
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
