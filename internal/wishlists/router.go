package wishlists

import (
	"giftly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupWishlistRoutes(router *gin.RouterGroup, controller Controller) {
	wishlists := router.Group("/wishlists")
	wishlists.Use(middleware.JWTAuth())
	{
		wishlists.POST("", controller.CreateWishlist)                 // POST /api/v1/wishlists - Create wishlist
		wishlists.GET("", controller.ListWishlists)                   // GET /api/v1/wishlists - List own wishlists
		wishlists.GET("/:id", controller.GetWishlist)                 // GET /api/v1/wishlists/:id - Wishlist with gifts
		wishlists.PUT("/:id", controller.UpdateWishlist)              // PUT /api/v1/wishlists/:id - Rename or redescribe
		wishlists.DELETE("/:id", controller.DeleteWishlist)           // DELETE /api/v1/wishlists/:id - Delete wishlist
		wishlists.PUT("/:id/items/:slug", controller.AddItem)         // PUT /api/v1/wishlists/:id/items/:slug - Add gift
		wishlists.DELETE("/:id/items/:slug", controller.RemoveItem)   // DELETE /api/v1/wishlists/:id/items/:slug - Remove gift
	}
}
