package models

import "time"

// User is an identity row. RelatedID points at the Customer or Barber
// the account belongs to, depending on Role.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// CUSTOMER, BARBER, CASHIER or MANAGER
	Role string `gorm:"size:20;default:'CUSTOMER'" json:"role"`

	RelatedID uint `json:"related_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
