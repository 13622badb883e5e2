package users

import (
	"giftly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configures the current-user routes
func SetupUserRoutes(rg *gin.RouterGroup, controller Controller) {
	me := rg.Group("/users/me")
	me.Use(middleware.JWTAuth())
	{
		me.GET("", controller.GetMe)       // GET /api/v1/users/me
		me.PUT("", controller.UpdateMe)    // PUT /api/v1/users/me
		me.DELETE("", controller.DeleteMe) // DELETE /api/v1/users/me
	}
}
