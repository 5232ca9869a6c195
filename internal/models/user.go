package models

import "time"

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
)

// Role is fixed at registration; there is no role-change path.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;not null;default:'customer'" json:"role"`

	ProfilePicture string `gorm:"size:255" json:"profile_picture"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
