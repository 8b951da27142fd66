package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Ross563/e-commerse-store/controllers/auth"
	"github.com/Ross563/e-commerse-store/middleware"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.POST("/logout", authControllers.Logout())
		authGroup.GET("/profile", middleware.ProtectRoute(db), authControllers.GetProfile())
		authGroup.POST("/change-role", middleware.ProtectRoute(db), authControllers.ChangeRole(db))
	}
}
