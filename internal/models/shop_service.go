package models

import "time"

type ShopService struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	// Preserves the order services were submitted in.
	Position int `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
