package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Ross563/e-commerse-store/controllers/cart"
	"github.com/Ross563/e-commerse-store/middleware"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart", middleware.ProtectRoute(db))
	{
		cart.GET("", cartControllers.GetCartProducts(db))
		cart.POST("", cartControllers.AddToCart(db))
		cart.PUT("/:id", cartControllers.UpdateQuantity(db))
		cart.DELETE("/:id", cartControllers.RemoveFromCart(db))
		cart.DELETE("", cartControllers.RemoveFromCart(db))
	}
}
