package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/Ross563/e-commerse-store/controllers/payment"
	"github.com/Ross563/e-commerse-store/middleware"
	"github.com/Ross563/e-commerse-store/payments"
)

// SetupPaymentRoutes registers all "/api/payments/*" endpoints. Requires JWT middleware.
func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB, gw payments.Gateway, clientURL string) {
	pay := api.Group("/payments", middleware.ProtectRoute(db))
	{
		pay.POST("/checkout", paymentControllers.CreateCheckoutSession(db, gw, clientURL))
		pay.POST("/checkout-success", paymentControllers.CheckoutSuccess(db, gw))
	}
}
