package models

import "time"

type CustomHaircut struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	PictureURL  string `gorm:"size:255" json:"picture_url"`

	CreatedAt time.Time `json:"created_at"`
}
