package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ShopID uint `gorm:"index" json:"shop_id"`

	// One review per booking.
	BookingID uint    `gorm:"uniqueIndex;not null" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	Photos []ReviewPhoto `gorm:"constraint:OnDelete:CASCADE;" json:"photos"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewPhoto struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ReviewID uint   `gorm:"index" json:"review_id"`
	URL      string `gorm:"size:512;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}
