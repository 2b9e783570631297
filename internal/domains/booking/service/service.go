package service

import (
	"context"
	"fmt"
	"os"

	"farn/config"
	"farn/infras/kafka"
	"farn/infras/mailer"
	"farn/infras/otel"
	"farn/internal/domains/booking/model"
	"farn/internal/domains/booking/model/dto"
	"farn/internal/domains/booking/repository"
	guestModel "farn/internal/domains/guest/model"
	guestRepo "farn/internal/domains/guest/repository"
	roomModel "farn/internal/domains/room/model"
	roomRepo "farn/internal/domains/room/repository"
	"farn/shared"
	"farn/shared/cache"
	"farn/shared/constant"
	gDto "farn/shared/dto"
	"farn/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Confirm(ctx context.Context, req dto.ConfirmBookingRequest) (dto.ConfirmBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Receipt(ctx context.Context, id string) ([]byte, string, error)
}

type serviceImpl struct {
	repo      repository.Booking
	guestRepo guestRepo.Guest
	roomRepo  roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	mailer    mailer.Mailer
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	guestRepo guestRepo.Guest,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	mailer mailer.Mailer,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		mailer:    mailer,
		kafka:     kafka,
		otel:      otel,
	}
}

// Confirm runs the whole confirmation pipeline. The booking is committed
// first; everything after the commit (receipt, email, events) degrades the
// reported status but never rolls the booking back.
func (s *serviceImpl) Confirm(ctx context.Context, req dto.ConfirmBookingRequest) (res dto.ConfirmBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	booking, err := req.ToModel(actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !booking.CheckOut.After(booking.CheckIn) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Active {
		return res, failure.BadRequestFromString("room is not active") // nolint:wrapcheck
	}

	booking.TotalAmount = float64(booking.Nights()) * room.Price

	available, err := s.repo.IsRoomAvailable(ctx, booking.RoomID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if !available {
		return res, failure.Conflict("room is already booked for the requested dates") // nolint:wrapcheck
	}

	if err = s.repo.CreateConfirmed(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to commit booking")

		return res, fmt.Errorf("failed to commit booking: %w", err)
	}

	log.Info().Str("bookingID", booking.ID).Str("roomID", booking.RoomID).Msg("booking committed")

	go s.afterCommit(context.WithoutCancel(ctx), booking)

	status := s.finishConfirmation(ctx, booking)

	res = dto.ConfirmBookingResponse{
		BookingID:      booking.ID,
		Status:         status,
		TotalAmount:    booking.TotalAmount,
		ReceiptEmailed: status == model.StatusDelivered,
		Message:        confirmationMessage(status),
	}

	return res, nil
}

// finishConfirmation renders and delivers the receipt and always removes the
// rendered file before returning. The outcome is reported in the response
// only; the committed row is never touched again.
func (s *serviceImpl) finishConfirmation(ctx context.Context, booking model.Booking) string {
	details, path, err := s.renderReceipt(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("receipt rendering exhausted all attempts")

		return model.StatusReceiptUnavailable
	}

	defer func() {
		if removeErr := os.Remove(path); removeErr != nil {
			log.Error().Err(removeErr).Str("path", path).Msg("failed to remove receipt file")
		}
	}()

	if s.deliverReceipt(ctx, details, path) {
		return model.StatusDelivered
	}

	return model.StatusFallback
}

// afterCommit runs the best-effort side effects of a committed booking.
func (s *serviceImpl) afterCommit(ctx context.Context, booking model.Booking) {
	s.publishConfirmed(ctx, booking)

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func confirmationMessage(status string) string {
	switch status {
	case model.StatusDelivered:
		return "booking confirmed, receipt emailed to guest"
	case model.StatusFallback:
		return "booking confirmed, receipt could not be emailed; use the receipt endpoint for a printable copy"
	case model.StatusReceiptUnavailable:
		return "booking confirmed, receipt is temporarily unavailable"
	default:
		return "booking confirmed"
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel removes the booking row, releasing its dates. Committed bookings
// are never updated in place; cancellation is a real deletion, so a
// cancelled booking is indistinguishable from one that never existed.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// Receipt re-renders the receipt for download. Nothing is persisted; the
// document is rebuilt from the booking row on every call.
func (s *serviceImpl) Receipt(ctx context.Context, id string) (pdf []byte, filename string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Receipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	details, err := s.repo.GetReceiptDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get receipt details")

		return nil, "", fmt.Errorf("failed to get receipt details: %w", err)
	}

	if details.BookingID == constant.Empty {
		return nil, "", failure.NotFound("booking not found") // nolint:wrapcheck
	}

	pdf, err = s.buildReceiptPDF(details)
	if err != nil {
		log.Error().Err(err).Msg("failed to render receipt")

		return nil, "", fmt.Errorf("failed to render receipt: %w", err)
	}

	return pdf, receiptFilename(details.BookingID), nil
}
