package models

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	// Line items as priced at session creation, copied verbatim from the
	// checkout session metadata. This snapshot, not the live cart, is the
	// authoritative record of what was bought and at which prices.
	Products    datatypes.JSON `gorm:"not null" json:"products"`
	TotalAmount float64        `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	// Unique index makes order materialization idempotent against duplicate
	// confirmation calls for the same checkout session.
	StripeSessionID string    `gorm:"size:255;uniqueIndex;not null" json:"stripe_session_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// OrderLine is one entry of the Products snapshot.
type OrderLine struct {
	ProductID uint    `json:"id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
