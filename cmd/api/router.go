package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupNavigationRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.Auth(c.JWT))
	{
		users.GET("/me", c.UserHandler.GetProfile)
		users.PUT("/me", c.UserHandler.UpdateProfile)
		users.PUT("/change-password", c.UserHandler.ChangePassword)
	}
}

// ========================================
// CATEGORY ROUTES (public)
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/tree", c.CategoryHandler.GetTree)
		categories.GET("/search", c.CategoryHandler.Search)
		categories.GET("/:slug", c.CategoryHandler.GetBySlug)
		categories.GET("/:slug/children", c.CategoryHandler.GetChildren)
	}
}

// ========================================
// POST ROUTES (public)
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:slug", c.PostHandler.GetBySlug)
		posts.GET("/:slug/comments", c.CommentHandler.GetThread)
		posts.POST("/:slug/comments", middleware.Auth(c.JWT), c.CommentHandler.Create)
	}
}

// ========================================
// NAVIGATION ROUTES (public)
// ========================================
func setupNavigationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/navigation", c.NavigationHandler.GetMenu)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.JWT), middleware.AdminOnly())
	{
		// Users
		admin.GET("/users", c.UserHandler.ListUsers)
		admin.PUT("/users/:id/role", c.UserHandler.UpdateUserRole)
		admin.PUT("/users/:id/status", c.UserHandler.UpdateUserStatus)

		// Categories
		admin.GET("/categories", c.CategoryHandler.ListAll)
		admin.POST("/categories", c.CategoryHandler.Create)
		admin.PUT("/categories/:id", c.CategoryHandler.Update)
		admin.PATCH("/categories/:id/move", c.CategoryHandler.Move)
		admin.PATCH("/categories/:id/activate", c.CategoryHandler.Activate)
		admin.PATCH("/categories/:id/deactivate", c.CategoryHandler.Deactivate)
		admin.DELETE("/categories/:id", c.CategoryHandler.Delete)

		// Posts
		admin.GET("/posts", c.PostHandler.ListAll)
		admin.POST("/posts", c.PostHandler.Create)
		admin.GET("/posts/:id", c.PostHandler.GetByID)
		admin.PUT("/posts/:id", c.PostHandler.Update)
		admin.PATCH("/posts/:id/publish", c.PostHandler.Publish)
		admin.PATCH("/posts/:id/unpublish", c.PostHandler.Unpublish)
		admin.PATCH("/posts/:id/restore", c.PostHandler.Restore)
		admin.DELETE("/posts/:id", c.PostHandler.Delete)

		// Comments
		admin.GET("/comments", c.CommentHandler.ListByPost)
		admin.GET("/comments/pending", c.CommentHandler.ListPending)
		admin.PATCH("/comments/:id/approve", c.CommentHandler.Approve)
		admin.PATCH("/comments/:id/reject", c.CommentHandler.Reject)
		admin.PATCH("/comments/:id/activate", c.CommentHandler.Activate)
		admin.PATCH("/comments/:id/deactivate", c.CommentHandler.Deactivate)
		admin.DELETE("/comments/:id", c.CommentHandler.Delete)

		// Navigation
		admin.GET("/navigation", c.NavigationHandler.ListAll)
		admin.POST("/navigation", c.NavigationHandler.Create)
		admin.GET("/navigation/:id", c.NavigationHandler.GetByID)
		admin.PUT("/navigation/:id", c.NavigationHandler.Update)
		admin.PATCH("/navigation/:id/activate", c.NavigationHandler.Activate)
		admin.PATCH("/navigation/:id/deactivate", c.NavigationHandler.Deactivate)
		admin.DELETE("/navigation/:id", c.NavigationHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
