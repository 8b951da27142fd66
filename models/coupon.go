package models

import "time"

type Coupon struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Code               string    `gorm:"size:255;uniqueIndex;not null" json:"code"`
	DiscountPercentage float64   `gorm:"type:decimal(5,2);not null;check:discount_percentage >= 0 AND discount_percentage <= 100" json:"discount_percentage"`
	ExpirationDate     time.Time `gorm:"not null" json:"expiration_date"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`
	// Partial unique index: at most one active coupon per user.
	UserID uint `gorm:"uniqueIndex:idx_coupons_one_active_per_user,where:is_active" json:"user_id"`
}
