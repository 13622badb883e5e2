package bookmarks

import (
	"giftly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookmarkRoutes(router *gin.RouterGroup, controller Controller) {
	user := router.Group("/user")
	user.Use(middleware.JWTAuth())
	{
		user.GET("/bookmarked/:slug", controller.GetBookmarkedStatus) // GET /api/v1/user/bookmarked/:slug - Bookmark status
		user.GET("/bookmarks", controller.ListBookmarks)              // GET /api/v1/user/bookmarks - List saved gifts
		user.PUT("/bookmarks/:slug", controller.AddBookmark)          // PUT /api/v1/user/bookmarks/:slug - Save gift
		user.DELETE("/bookmarks/:slug", controller.RemoveBookmark)    // DELETE /api/v1/user/bookmarks/:slug - Remove saved gift
	}
}
