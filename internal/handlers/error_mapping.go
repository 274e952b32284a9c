package handlers

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"github.com/SupremoBarbershop/booking-api/internal/httperr"
)

type errorMapping struct {
	status  func(c *gin.Context, code, message string)
	message string
}

// Business codes raised by the booking, ledger and receipt use cases,
// mapped to the wire. Anything unknown is a persistence failure and
// surfaces as a generic 500 after being logged with context.
var businessMappings = map[string]errorMapping{
	"invalid_date":             {httperr.BadRequest, "Invalid appointment date."},
	"invalid_time_slot":        {httperr.BadRequest, "Invalid appointment time."},
	"invalid_appointment_type": {httperr.BadRequest, "Invalid appointment type."},
	"invalid_guest_email":      {httperr.BadRequest, "A valid guest email is required."},
	"invalid_amount":           {httperr.BadRequest, "Amount must be greater than zero."},
	"invalid_discount":         {httperr.BadRequest, "Discount cannot exceed the amount paid."},
	"invalid_payment_method":   {httperr.BadRequest, "Unsupported payment method."},
	"invalid_status":           {httperr.BadRequest, "Unsupported transaction status."},
	"service_unavailable":      {httperr.BadRequest, "Service is not currently available."},
	"online_payments_disabled": {httperr.BadRequest, "Online payments are not enabled."},

	"service_not_found":     {httperr.NotFound, "Service not found"},
	"barber_not_found":      {httperr.NotFound, "Barber not found"},
	"reservation_not_found": {httperr.NotFound, "Reservation not found"},
	"transaction_not_found": {httperr.NotFound, "Transaction not found"},
	"receipt_not_found":     {httperr.NotFound, "Receipt not found"},
	"receipt_not_available": {httperr.NotFound, "Receipt is not available for this transaction."},

	"slot_taken":     {httperr.Conflict, "Time slot is not available"},
	"payment_exists": {httperr.Conflict, "Payment already processed for this reservation"},

	"payment_failed": {httperr.Internal, "Payment processing failed"},
}

func mapCoreError(c *gin.Context, log *zap.Logger, op string, err error) {
	if code := httperr.BusinessCode(err); code != "" {
		if m, ok := businessMappings[code]; ok {
			m.status(c, code, m.message)
			return
		}
	}

	log.Error("operation failed",
		zap.String("operation", op),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "An error occurred. Please try again.")
}
