package gifts

import (
	"giftly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupGiftRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse the catalog
	publicGifts := router.Group("/gifts")
	{
		publicGifts.GET("", controller.ListGifts)            // GET /api/v1/gifts - Browse visible gifts
		publicGifts.GET("/search", controller.SearchGifts)   // GET /api/v1/gifts/search - Filtered search
		publicGifts.GET("/:slug", controller.GetGift)        // GET /api/v1/gifts/:slug - Gift details by slug
	}

	// Admin routes - catalog writes require authentication
	adminGifts := router.Group("/admin/gifts")
	adminGifts.Use(middleware.JWTAuth())
	{
		adminGifts.PUT("", controller.UpsertGift)           // PUT /api/v1/admin/gifts - Upsert gift by slug
		adminGifts.DELETE("/:slug", controller.DeleteGift)  // DELETE /api/v1/admin/gifts/:slug - Remove gift
	}
}
