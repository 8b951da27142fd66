package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Ross563/e-commerse-store/controllers/order"
	"github.com/Ross563/e-commerse-store/middleware"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders", middleware.ProtectRoute(db))
	{
		orders.GET("", orderControllers.GetUserOrders(db))
		orders.GET("/feed", middleware.AdminRoute, orderControllers.OrderFeedHandler)
	}
}
