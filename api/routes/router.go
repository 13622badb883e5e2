// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"giftly/internal/auth"
	"giftly/internal/bookmarks"
	"giftly/internal/gifts"
	"giftly/internal/notifications"
	"giftly/internal/shared/config"
	"giftly/internal/shared/database"
	"giftly/internal/tags"
	"giftly/internal/users"
	"giftly/internal/wishlists"
	"giftly/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// Repositories shared across features
	tagsRepo  tags.Repository
	giftsRepo gifts.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	// Tag and gift repositories are built once; bookmarks and wishlists
	// resolve slugs through the same gift repository
	r.tagsRepo = tags.NewRepository(r.db.GetPostgreSQL())
	r.giftsRepo = gifts.NewRepository(r.db.GetPostgreSQL(), r.tagsRepo)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupUserRoutes(api)
		r.setupTagRoutes(api)
		r.setupGiftRoutes(api)
		r.setupBookmarkRoutes(api)
		r.setupWishlistRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "giftly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "giftly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	usersRepo := users.NewRepository(r.db.GetPostgreSQL())
	usersService := users.NewService(usersRepo)

	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, usersService, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	usersRepo := users.NewRepository(r.db.GetPostgreSQL())
	usersService := users.NewService(usersRepo)
	usersController := users.NewController(usersService)

	users.SetupUserRoutes(rg, usersController)
}

func (r *Router) setupTagRoutes(rg *gin.RouterGroup) {
	tagsService := tags.NewService(r.tagsRepo)
	tagsController := tags.NewController(tagsService)

	tags.SetupTagRoutes(rg, tagsController)
}

func (r *Router) setupGiftRoutes(rg *gin.RouterGroup) {
	giftsService := gifts.NewService(r.giftsRepo, r.tagsRepo)

	if r.db.Redis != nil {
		giftsService.SetCacheService(cache.NewService(r.db.GetRedis()))
	}
	if r.producer != nil {
		giftsService.SetPublisher(r.producer)
	}

	giftsController := gifts.NewController(giftsService)
	gifts.SetupGiftRoutes(rg, giftsController)
}

func (r *Router) setupBookmarkRoutes(rg *gin.RouterGroup) {
	bookmarksRepo := bookmarks.NewRepository(r.db.GetPostgreSQL())
	bookmarksService := bookmarks.NewService(bookmarksRepo, r.giftsRepo, r.tagsRepo)

	if r.producer != nil {
		bookmarksService.SetPublisher(r.producer)
	}

	bookmarksController := bookmarks.NewController(bookmarksService)
	bookmarks.SetupBookmarkRoutes(rg, bookmarksController)
}

func (r *Router) setupWishlistRoutes(rg *gin.RouterGroup) {
	wishlistsRepo := wishlists.NewRepository(r.db.GetPostgreSQL())
	wishlistsService := wishlists.NewService(wishlistsRepo, r.giftsRepo, r.tagsRepo)
	wishlistsController := wishlists.NewController(wishlistsService)

	wishlists.SetupWishlistRoutes(rg, wishlistsController)
}
