package models

import "time"

type OperatingHours struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	Weekday int `json:"weekday"`

	Open   string `gorm:"size:5" json:"open"`
	Close  string `gorm:"size:5" json:"close"`
	Closed bool   `gorm:"default:false" json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
