package productControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ross563/e-commerse-store/models"
)

// PATCH /api/products/:id (admin)
//
// Toggles is_featured and rebuilds the cache snapshot (write-through).
func ToggleFeaturedProduct(db *gorm.DB, fc FeaturedCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		product.IsFeatured = !product.IsFeatured
		if err := db.Model(&product).Update("is_featured", product.IsFeatured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		var featured []models.Product
		if err := db.Where("is_featured = ?", true).Find(&featured).Error; err == nil {
			if err := fc.SetFeaturedProducts(c.Request.Context(), featured); err != nil {
				log.Printf("featured products cache refresh failed: %v", err)
			}
		} else {
			log.Printf("featured products reload failed: %v", err)
		}

		c.JSON(http.StatusOK, product)
	}
}
