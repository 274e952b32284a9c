package models

import "time"

// GuestTransaction is a combined booking + payment row for a walk-up
// customer without an account.
type GuestTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestEmail string `gorm:"size:100;not null" json:"guest_email"`
	GuestPhone string `gorm:"size:20" json:"guest_phone"`

	AppointmentDate string `gorm:"size:10;not null;index:idx_guest_slot" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null;index:idx_guest_slot" json:"appointment_time"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	BarberID uint   `gorm:"not null;index:idx_guest_slot" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `gorm:"size:20;default:'Cash'" json:"payment_method"`

	ReceiptNumber string `gorm:"size:60;uniqueIndex;not null" json:"receipt_number"`

	// Pending, Completed, Cancelled or Refunded
	Status string `gorm:"size:20;default:'Completed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
