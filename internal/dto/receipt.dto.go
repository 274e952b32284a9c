package dto

// ReceiptView is the complete data bundle handed to an external
// renderer. It is assembled on demand; nothing here is persisted as
// its own row.
type ReceiptView struct {
	ReceiptNumber string `json:"receipt_number"`

	Date string `json:"date"`
	Time string `json:"time"`

	ServiceName     string `json:"service_name"`
	ServiceCategory string `json:"service_category"`
	BarberName      string `json:"barber_name,omitempty"`

	Amount        float64 `json:"amount"`
	Discount      float64 `json:"discount,omitempty"`
	PaymentMethod string  `json:"payment_method"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	Status string `json:"status"`
}
