package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/Ross563/e-commerse-store/controllers/coupon"
	"github.com/Ross563/e-commerse-store/middleware"
)

// SetupCouponRoutes registers all "/api/coupons/*" endpoints. Requires JWT middleware.
func SetupCouponRoutes(api *gin.RouterGroup, db *gorm.DB) {
	coupons := api.Group("/coupons", middleware.ProtectRoute(db))
	{
		coupons.GET("", couponControllers.GetCoupon(db))
		coupons.POST("/validate", couponControllers.ValidateCoupon(db))
	}
}
