package dto

import (
	"time"

	"farn/internal/domains/booking/model"
	"farn/shared"
	"farn/shared/constant"
	gDto "farn/shared/dto"
	gModel "farn/shared/model"
	"farn/shared/timezone"

	"github.com/google/uuid"
)

type ConfirmBookingRequest struct {
	GuestID        string `json:"guest_id"        validate:"required,uuid"`
	RoomID         string `json:"room_id"         validate:"required,uuid"`
	CheckIn        string `json:"check_in"        validate:"required"`
	CheckOut       string `json:"check_out"       validate:"required"`
	PaymentMethod  string `json:"payment_method"  validate:"omitempty,oneof=pending credit_card cash upi bank_transfer"`
	SpecialRequest string `json:"special_request" validate:"omitempty,max=500"`
}

func (c *ConfirmBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	paymentMethod := model.PaymentMethodPending
	if c.PaymentMethod != "" {
		paymentMethod = c.PaymentMethod
	}

	return model.Booking{
		ID:             uuid.NewString(),
		GuestID:        c.GuestID,
		RoomID:         c.RoomID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		PaymentMethod:  paymentMethod,
		SpecialRequest: c.SpecialRequest,
		Status:         model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type ConfirmBookingResponse struct {
	BookingID      string  `json:"booking_id"`
	Status         string  `json:"status"`
	TotalAmount    float64 `json:"total_amount"`
	ReceiptEmailed bool    `json:"receipt_emailed"`
	Message        string  `json:"message"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	GuestID        string  `json:"guest_id"`
	RoomID         string  `json:"room_id"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	PaymentMethod  string  `json:"payment_method"`
	TotalAmount    float64 `json:"total_amount"`
	SpecialRequest string  `json:"special_request"`
	Status         string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.PaymentMethod = model.PaymentMethod
	r.TotalAmount = model.TotalAmount
	r.SpecialRequest = model.SpecialRequest
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingConfirmedEvent is published after a booking is committed.
type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	GuestID     string    `json:"guest_id"`
	RoomID      string    `json:"room_id"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
