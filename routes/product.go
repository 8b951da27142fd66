package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Ross563/e-commerse-store/controllers/product"
	"github.com/Ross563/e-commerse-store/middleware"
)

// SetupProductRoutes registers all "/api/products/*" endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, fc productControllers.FeaturedCache) {
	products := api.Group("/products")
	{
		// Public browsing
		products.GET("/featured", productControllers.GetFeaturedProducts(db, fc))
		products.GET("/category/:category", productControllers.GetProductsByCategory(db))
		products.GET("/recommendations", productControllers.GetRecommendedProducts(db))

		// Admin catalog management
		admin := products.Group("", middleware.ProtectRoute(db), middleware.AdminRoute)
		{
			admin.GET("", productControllers.GetAllProducts(db))
			admin.GET("/export", productControllers.ExportProductsToExcel(db))
			admin.POST("", productControllers.CreateProduct(db))
			admin.PATCH("/:id", productControllers.ToggleFeaturedProduct(db, fc))
			admin.DELETE("/:id", productControllers.DeleteProduct(db))
		}
	}
}
