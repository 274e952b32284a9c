package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	// Haircut, Hairdyeing or Shaving
	Category string `gorm:"size:50" json:"category"`

	Price     float64 `json:"price"`
	Available bool    `gorm:"default:true" json:"available"`

	CustomHaircutID *uint `json:"custom_haircut_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
