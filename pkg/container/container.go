package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	categoryhandler "blog-backend/internal/domains/category/handler"
	categoryrepo "blog-backend/internal/domains/category/repository"
	categoryservice "blog-backend/internal/domains/category/service"
	commenthandler "blog-backend/internal/domains/comment/handler"
	commentrepo "blog-backend/internal/domains/comment/repository"
	commentservice "blog-backend/internal/domains/comment/service"
	navigationhandler "blog-backend/internal/domains/navigation/handler"
	navigationrepo "blog-backend/internal/domains/navigation/repository"
	navigationservice "blog-backend/internal/domains/navigation/service"
	posthandler "blog-backend/internal/domains/post/handler"
	postrepo "blog-backend/internal/domains/post/repository"
	postservice "blog-backend/internal/domains/post/service"
	userhandler "blog-backend/internal/domains/user/handler"
	userrepo "blog-backend/internal/domains/user/repository"
	userservice "blog-backend/internal/domains/user/service"
	infracache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	pkgcache "blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/navigation"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/user"
)

// Container wires configuration, infrastructure and every domain's
// repository/service/handler stack.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  pkgcache.Cache
	JWT    *jwt.Manager

	// Repositories
	UserRepo       user.Repository
	CategoryRepo   category.Repository
	PostRepo       post.Repository
	CommentRepo    comment.Repository
	NavigationRepo navigation.Repository

	// Services
	UserService       user.Service
	CategoryService   category.Service
	PostService       post.Service
	CommentService    comment.Service
	NavigationService navigation.Service

	// Handlers
	UserHandler       *userhandler.UserHandler
	CategoryHandler   *categoryhandler.CategoryHandler
	PostHandler       *posthandler.PostHandler
	CommentHandler    *commenthandler.CommentHandler
	NavigationHandler *navigationhandler.NavigationHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Step 2: database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(ctx, c.DB.Pool); err != nil {
		return nil, err
	}

	if cfg.Seed.DemoData {
		if err := database.SeedDemoData(ctx, c.DB.Pool); err != nil {
			return nil, err
		}
	}

	// Step 3: redis; the app degrades to uncached reads without it
	redisCache, err := infracache.NewRedisCache(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", err)
	} else {
		c.Cache = redisCache
	}

	// Step 4: token manager
	c.JWT = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiration)

	// Step 5: domain stacks
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userrepo.NewPostgresRepository(c.DB.Pool)
	c.CategoryRepo = categoryrepo.NewPostgresRepository(c.DB.Pool)
	c.PostRepo = postrepo.NewPostgresRepository(c.DB.Pool)
	c.CommentRepo = commentrepo.NewPostgresRepository(c.DB.Pool)
	c.NavigationRepo = navigationrepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.UserService = userservice.NewService(c.UserRepo, c.JWT)
	c.CategoryService = categoryservice.NewService(c.CategoryRepo, c.Cache)
	c.PostService = postservice.NewService(c.PostRepo, c.CategoryRepo)
	c.CommentService = commentservice.NewService(c.CommentRepo, c.PostRepo)
	c.NavigationService = navigationservice.NewService(c.NavigationRepo, c.Cache)
}

func (c *Container) initHandlers() {
	c.UserHandler = userhandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryhandler.NewCategoryHandler(c.CategoryService)
	c.PostHandler = posthandler.NewPostHandler(c.PostService)
	c.CommentHandler = commenthandler.NewCommentHandler(c.CommentService)
	c.NavigationHandler = navigationhandler.NewNavigationHandler(c.NavigationService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close cache", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
