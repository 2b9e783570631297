package service

import (
	"context"
	"os"
	"strings"

	"farn/infras/kafka"
	"farn/infras/mailer"
	"farn/internal/domains/booking/model"
	"farn/internal/domains/booking/model/dto"
	"farn/shared/constant"
	"farn/shared/timezone"

	"github.com/rs/zerolog/log"
)

// deliverReceipt emails the rendered receipt to the guest. Delivery is best
// effort: any failure is logged and reported as false, never escalated.
func (s *serviceImpl) deliverReceipt(ctx context.Context, details model.ReceiptDetails, path string) bool {
	if _, err := os.Stat(path); err != nil {
		log.Error().Err(err).Str("bookingID", details.BookingID).Str("path", path).Msg("receipt document missing, skipping delivery")

		return false
	}

	// Shallow syntactic check only; the transport rejects the rest.
	if !strings.Contains(details.GuestEmail, "@") {
		log.Warn().Str("bookingID", details.BookingID).Msg("guest email unusable, skipping receipt delivery")

		return false
	}

	msg := mailer.Message{
		To:             details.GuestEmail,
		Subject:        "Booking Confirmation - " + s.cfg.Hotel.Name,
		Body:           deliveryBody(details, s.cfg.Hotel.Name),
		AttachmentPath: path,
		AttachmentName: receiptFilename(details.BookingID),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("bookingID", details.BookingID).Msg("failed to deliver receipt")

		return false
	}

	log.Info().Str("bookingID", details.BookingID).Str("to", details.GuestEmail).Msg("receipt delivered")

	return true
}

func deliveryBody(details model.ReceiptDetails, hotelName string) string {
	return "Dear " + details.GuestName + ",\n\n" +
		"Your booking at " + hotelName + " is confirmed. " +
		"Room " + details.RoomNumber + ", " +
		details.CheckIn.Format(constant.DateOnlyFormat) + " to " + details.CheckOut.Format(constant.DateOnlyFormat) + ".\n" +
		"Your receipt is attached.\n\n" +
		"We look forward to welcoming you."
}

// publishConfirmed emits the booking.confirmed event. Failures are logged
// only; the event stream is not part of the confirmation contract.
func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking) {
	event := dto.BookingConfirmedEvent{
		BookingID:   booking.ID,
		GuestID:     booking.GuestID,
		RoomID:      booking.RoomID,
		CheckIn:     booking.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:    booking.CheckOut.Format(constant.DateOnlyFormat),
		TotalAmount: booking.TotalAmount,
		OccurredAt:  timezone.Now(),
	}

	msg := kafka.Message{
		Key:   booking.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, msg); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
	}
}
