package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farn/internal/domains/booking/model"
	"farn/internal/domains/booking/model/dto"
)

func TestConfirmBookingRequest_ToModel(t *testing.T) {
	req := dto.ConfirmBookingRequest{
		GuestID:        "guest-id",
		RoomID:         "room-id",
		CheckIn:        "2026-03-10",
		CheckOut:       "2026-03-12",
		PaymentMethod:  model.PaymentMethodUPI,
		SpecialRequest: "late arrival",
	}

	booking, err := req.ToModel("front-desk")

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "guest-id", booking.GuestID)
	assert.Equal(t, "room-id", booking.RoomID)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), booking.CheckIn)
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), booking.CheckOut)
	assert.Equal(t, model.PaymentMethodUPI, booking.PaymentMethod)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, "front-desk", booking.CreatedBy)
	assert.Equal(t, 2, booking.Nights())
}

func TestConfirmBookingRequest_ToModelDefaultsPaymentMethod(t *testing.T) {
	req := dto.ConfirmBookingRequest{
		GuestID:  "guest-id",
		RoomID:   "room-id",
		CheckIn:  "2026-03-10",
		CheckOut: "2026-03-11",
	}

	booking, err := req.ToModel("front-desk")

	assert.NoError(t, err)
	assert.Equal(t, model.PaymentMethodPending, booking.PaymentMethod)
}

func TestConfirmBookingRequest_ToModelRejectsBadDates(t *testing.T) {
	req := dto.ConfirmBookingRequest{
		GuestID:  "guest-id",
		RoomID:   "room-id",
		CheckIn:  "10/03/2026",
		CheckOut: "2026-03-12",
	}

	_, err := req.ToModel("front-desk")

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:            "booking-id",
		GuestID:       "guest-id",
		RoomID:        "room-id",
		CheckIn:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		PaymentMethod: model.PaymentMethodCash,
		TotalAmount:   300,
		Status:        model.StatusDelivered,
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, "booking-id", response.ID)
	assert.Equal(t, "2026-03-10", response.CheckIn)
	assert.Equal(t, "2026-03-12", response.CheckOut)
	assert.Equal(t, model.StatusDelivered, response.Status)
	assert.Equal(t, 300.0, response.TotalAmount)
}
