package models

import "time"

// Payment records money taken against a reservation. At most one row
// per reservation; rows are never mutated after creation.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint        `gorm:"not null;uniqueIndex" json:"reservation_id"`
	Reservation   Reservation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"reservation"`

	PaymentMethod   string  `gorm:"size:20;default:'Cash'" json:"payment_method"`
	AmountPaid      float64 `json:"amount_paid"`
	DiscountApplied float64 `json:"discount_applied"`

	PaymentDate   string `gorm:"size:10" json:"payment_date"`
	ReceiptNumber string `gorm:"size:60;uniqueIndex;not null" json:"receipt_number"`

	// Gateway reference for Online payments, empty for Cash.
	TransactionID string `gorm:"size:64" json:"transaction_id"`

	CashierID *uint `json:"cashier_id"`

	CreatedAt time.Time `json:"created_at"`
}
