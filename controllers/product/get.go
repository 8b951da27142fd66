package productControllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ross563/e-commerse-store/models"
)

// FeaturedCache is the read/write-through snapshot of featured products.
// A nil slice from Get means a miss. Implemented by cache.Client.
type FeaturedCache interface {
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
	SetFeaturedProducts(ctx context.Context, products []models.Product) error
}

// GET /api/products (admin)
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /api/products/featured
//
// Read-through: serve the cached snapshot when present, otherwise query the
// catalog and populate the cache. Cache errors degrade to the catalog.
func GetFeaturedProducts(db *gorm.DB, fc FeaturedCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cached, err := fc.GetFeaturedProducts(ctx)
		if err != nil {
			log.Printf("featured products cache read failed: %v", err)
		}
		if cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}

		var featured []models.Product
		if err := db.Where("is_featured = ?", true).Find(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		if len(featured) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No featured products found"})
			return
		}

		if err := fc.SetFeaturedProducts(ctx, featured); err != nil {
			log.Printf("featured products cache write failed: %v", err)
		}
		c.JSON(http.StatusOK, featured)
	}
}

// GET /api/products/recommendations
func GetRecommendedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Select("id", "name", "description", "image", "price").
			Order("RANDOM()").
			Limit(4).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/category/:category
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		var products []models.Product
		if err := db.Where("category = ?", category).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
