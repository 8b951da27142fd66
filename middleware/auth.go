package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Ross563/e-commerse-store/models"
)

// ContextUserKey is where ProtectRoute stores the resolved user.
const ContextUserKey = "user"

// ProtectRoute verifies the signed access token (cookie first, Authorization
// header as fallback) and resolves it to a user row. The DB lookup means a
// deleted user's token stops working immediately.
func ProtectRoute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("accessToken")
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - No access token provided"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("ACCESS_TOKEN_SECRET")), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Access token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Invalid access token"})
			}
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Invalid access token"})
			c.Abort()
			return
		}
		userID, ok := claims["userId"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Invalid token claims"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", uint(userID)).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AdminRoute gates by role; must run after ProtectRoute.
func AdminRoute(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok || user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied - Admin only"})
		c.Abort()
		return
	}
	c.Next()
}

// CurrentUser returns the user resolved by ProtectRoute.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
