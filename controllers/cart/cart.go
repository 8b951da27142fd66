package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ross563/e-commerse-store/middleware"
	"github.com/Ross563/e-commerse-store/models"
)

type AddToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /api/cart
//
// Joined rows: live catalog product fields plus the cart quantity. Totals
// shown from this listing may differ from the catalog by checkout time; the
// checkout session snapshot is the authoritative priced record.
func GetCartProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var items []models.CartProduct
		if err := db.Table("cart_items").
			Select("products.*, cart_items.quantity").
			Joins("JOIN products ON cart_items.product_id = products.id").
			Where("cart_items.user_id = ?", user.ID).
			Scan(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart
//
// Insert-or-increment on the (user, product) pair; concurrent adds for the
// same pair resolve at the store's conflict clause.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		item := models.CartItem{UserID: user.ID, ProductID: req.ProductID, Quantity: 1}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("cart_items.quantity + 1")}),
		}).Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		var saved models.CartItem
		if err := db.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&saved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// PUT /api/cart/:id
//
// Sets the quantity for one (user, product) pair; zero removes the row.
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		productID := c.Param("id")

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quantity provided"})
			return
		}
		quantity := *req.Quantity
		if quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quantity provided"})
			return
		}

		var item models.CartItem
		if err := db.Where("user_id = ? AND product_id = ?", user.ID, productID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		if quantity == 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}

		item.Quantity = quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
// DELETE /api/cart
//
// Removes one pair, or every item for the user when no product is given.
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		productID := c.Param("id")

		query := db.Where("user_id = ?", user.ID)
		if productID != "" {
			query = query.Where("product_id = ?", productID)
		}
		if err := query.Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
	}
}
