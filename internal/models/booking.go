package models

import "time"

type Booking struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	CustomerID uint `gorm:"index" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ShopID uint `gorm:"index" json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shop"`

	// Snapshot of the chosen service at booking time. Later edits to the
	// shop's service list never rewrite historical bookings.
	ServiceName        string  `gorm:"size:100;not null" json:"service_name"`
	ServicePrice       float64 `json:"service_price"`
	ServiceDurationMin int     `json:"service_duration_min"`

	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5" json:"appointment_time"`
	// Combined date+time instant; conflict key for the active-slot index.
	AppointmentAt time.Time `gorm:"index" json:"appointment_at"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	EstimatedWaitingTime int        `gorm:"default:0" json:"estimated_waiting_time"`
	ActualStartTime      *time.Time `json:"actual_start_time"`
	ActualEndTime        *time.Time `json:"actual_end_time"`

	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `gorm:"size:20;default:'pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
