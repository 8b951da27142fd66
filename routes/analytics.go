package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	analyticsControllers "github.com/Ross563/e-commerse-store/controllers/analytics"
	"github.com/Ross563/e-commerse-store/middleware"
)

// SetupAnalyticsRoutes registers "/api/analytics". Admin only.
func SetupAnalyticsRoutes(api *gin.RouterGroup, db *gorm.DB) {
	analytics := api.Group("/analytics", middleware.ProtectRoute(db), middleware.AdminRoute)
	{
		analytics.GET("", analyticsControllers.GetAnalytics(db))
	}
}
