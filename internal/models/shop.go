package models

import "time"

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One shop per barber, enforced by the unique index.
	BarberID uint `gorm:"uniqueIndex;not null" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ShopName    string `gorm:"size:100;not null" json:"shop_name"`
	Description string `gorm:"size:500" json:"description"`

	Address   string  `gorm:"size:255;not null" json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `gorm:"size:100;index" json:"city"`
	State     string  `gorm:"size:100;index" json:"state"`
	ZipCode   string  `gorm:"size:20" json:"zip_code"`

	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Services       []ShopService    `gorm:"constraint:OnDelete:CASCADE;" json:"services"`
	OperatingHours []OperatingHours `gorm:"constraint:OnDelete:CASCADE;" json:"operating_hours"`

	CurrentWaitingTime int `gorm:"default:0" json:"current_waiting_time"`

	// Cached review aggregate, recomputed on every review mutation.
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`

	IsActive bool `gorm:"default:true" json:"is_active"`
	IsOpen   bool `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
