package tags

import (
	"github.com/gin-gonic/gin"
)

func SetupTagRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	publicTags := router.Group("/tags")
	{
		publicTags.GET("", controller.GetAllTags) // GET /api/v1/tags - tag list for catalog filtering
	}
}
