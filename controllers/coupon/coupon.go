package couponControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ross563/e-commerse-store/middleware"
	"github.com/Ross563/e-commerse-store/models"
)

const (
	// Reward coupon parameters, applied on issuance.
	rewardDiscountPercentage = 10.0
	rewardValidity           = 30 * 24 * time.Hour
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon expired")
)

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// FindValid looks up an active coupon owned by the user. A coupon past its
// expiry is flipped inactive as a side effect and reported as expired, even
// if it has never been used before.
func FindValid(db *gorm.DB, userID uint, code string) (models.Coupon, error) {
	var coupon models.Coupon
	err := db.Where("code = ? AND user_id = ? AND is_active = ?", code, userID, true).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Coupon{}, ErrCouponNotFound
		}
		return models.Coupon{}, err
	}

	if time.Now().After(coupon.ExpirationDate) {
		if err := db.Model(&models.Coupon{}).Where("id = ?", coupon.ID).
			Update("is_active", false).Error; err != nil {
			return models.Coupon{}, err
		}
		return models.Coupon{}, ErrCouponExpired
	}

	return coupon, nil
}

// Deactivate flips the coupon inactive after redemption. Idempotent: a coupon
// that is already inactive or missing is not an error.
func Deactivate(db *gorm.DB, userID uint, code string) error {
	return db.Model(&models.Coupon{}).
		Where("code = ? AND user_id = ?", code, userID).
		Update("is_active", false).Error
}

// IssueForUser replaces any prior coupon for the user with a fresh reward
// coupon. Run inside the caller's transaction so the delete-then-insert pair
// is atomic; the partial unique index on (user_id) WHERE is_active backstops
// the one-active-coupon invariant.
func IssueForUser(db *gorm.DB, userID uint) (models.Coupon, error) {
	if err := db.Where("user_id = ?", userID).Delete(&models.Coupon{}).Error; err != nil {
		return models.Coupon{}, err
	}

	coupon := models.Coupon{
		Code:               generateCouponCode(),
		DiscountPercentage: rewardDiscountPercentage,
		ExpirationDate:     time.Now().Add(rewardValidity),
		IsActive:           true,
		UserID:             userID,
	}
	if err := db.Create(&coupon).Error; err != nil {
		return models.Coupon{}, err
	}
	return coupon, nil
}

func generateCouponCode() string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "GIFT" + entropy[:6]
}

// GET /api/coupons
//
// The user's active coupon, or JSON null. Expiry is not checked here; it is
// discovered lazily on validation.
func GetCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var coupon models.Coupon
		err := db.Where("user_id = ? AND is_active = ?", user.ID, true).First(&coupon).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, coupon)
	}
}

// POST /api/coupons/validate
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var req ValidateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		coupon, err := FindValid(db, user.ID, req.Code)
		switch {
		case errors.Is(err, ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Coupon not found"})
		case errors.Is(err, ErrCouponExpired):
			c.JSON(http.StatusNotFound, gin.H{"message": "Coupon expired"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{
				"message":             "Coupon is valid",
				"code":                coupon.Code,
				"discount_percentage": coupon.DiscountPercentage,
			})
		}
	}
}
