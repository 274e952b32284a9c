package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Calendar date and half-hour slot, kept as strings because the
	// slot grid is a fixed enumerated set, not arbitrary timestamps.
	AppointmentDate string `gorm:"size:10;not null;index:idx_reservation_slot" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null;index:idx_reservation_slot" json:"appointment_time"`

	// BOOK or WALK_IN
	AppointmentType string `gorm:"size:20;default:'BOOK'" json:"appointment_type"`

	// Pending, Confirmed, Completed or Cancelled
	Status string `gorm:"size:20;default:'Confirmed'" json:"status"`

	// Unpaid or Paid. Mutated only by the payment ledger.
	PaymentStatus string `gorm:"size:20;default:'Unpaid'" json:"payment_status"`

	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	BarberID uint   `gorm:"not null;index:idx_reservation_slot" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
