package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Ross563/e-commerse-store/controllers/product"
	"github.com/Ross563/e-commerse-store/payments"
)

// SetupRoutes is the single entry-point that wires up all /api route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, fc productControllers.FeaturedCache, gw payments.Gateway, clientURL string) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupProductRoutes(api, db, fc)
	SetupCartRoutes(api, db)
	SetupCouponRoutes(api, db)
	SetupPaymentRoutes(api, db, gw, clientURL)
	SetupOrderRoutes(api, db)
	SetupAnalyticsRoutes(api, db)
}
