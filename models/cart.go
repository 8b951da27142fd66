package models

type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`

	User    User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// CartProduct is the joined row returned by the cart listing: the live
// catalog product plus the quantity held in the cart. Prices are read from
// the catalog at request time, not snapshotted into the cart.
type CartProduct struct {
	Product
	Quantity int `json:"quantity"`
}
