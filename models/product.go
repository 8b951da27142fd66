package models

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null;check:price >= 0" json:"price"`
	Image       string  `gorm:"not null" json:"image"`
	Category    string  `gorm:"size:255;not null" json:"category"`
	IsFeatured  bool    `gorm:"default:false" json:"is_featured"`
}
