package model

import (
	"time"

	"farn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldGuestID        = "guest_id"
	FieldRoomID         = "room_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldPaymentMethod  = "payment_method"
	FieldTotalAmount    = "total_amount"
	FieldSpecialRequest = "special_request"
)

// A booking is persisted as confirmed the moment its dates are committed and
// the row is never updated afterwards; cancellation deletes it. The delivery
// outcome statuses exist only in the confirmation response.
const (
	StatusConfirmed          = "confirmed"
	StatusDelivered          = "delivered"
	StatusFallback           = "fallback"
	StatusReceiptUnavailable = "receipt_unavailable"
)

const (
	PaymentMethodPending      = "pending"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodCash         = "cash"
	PaymentMethodUPI          = "upi"
	PaymentMethodBankTransfer = "bank_transfer"
)

type Booking struct {
	ID             string    `db:"id"`
	GuestID        string    `db:"guest_id"`
	RoomID         string    `db:"room_id"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	PaymentMethod  string    `db:"payment_method"`
	TotalAmount    float64   `db:"total_amount"`
	SpecialRequest string    `db:"special_request"`
	Status         string    `db:"status"`
	model.Metadata
}

// Nights returns the stay length for the half-open range [CheckIn, CheckOut).
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// ReceiptDetails is the joined projection rendered onto a receipt.
type ReceiptDetails struct {
	BookingID     string    `db:"booking_id"`
	GuestName     string    `db:"guest_name"`
	GuestEmail    string    `db:"guest_email"`
	RoomNumber    string    `db:"room_number"`
	RoomType      string    `db:"room_type"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	PaymentMethod string    `db:"payment_method"`
	TotalAmount   float64   `db:"total_amount"`
	CreatedAt     time.Time `db:"created_at"`
}
