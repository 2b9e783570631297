package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"farn/infras/otel"
	"farn/infras/postgres"
	"farn/internal/domains/booking/model"
	"farn/shared/constant"
	gDto "farn/shared/dto"
	"farn/shared/failure"
	"farn/shared/logger"
	gRepo "farn/shared/repository"
)

const (
	// Two stays collide when the ranges [check_in, check_out) intersect.
	// The operators must stay strict: a stay ending on the day another
	// starts is not a collision. Cancelled bookings are deleted outright,
	// so every row counts.
	queryCountOverlapping = `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND check_out > $2
		  AND check_in < $3`

	queryLockRoom = `SELECT id FROM rooms WHERE id = $1 AND active FOR UPDATE`

	queryReceiptDetails = `
		SELECT
			b.id AS booking_id,
			g.full_name AS guest_name,
			g.email AS guest_email,
			r.room_number,
			r.room_type,
			b.check_in,
			b.check_out,
			b.payment_method,
			b.total_amount,
			b.created_at
		FROM bookings b
		JOIN guests g ON g.id = b.guest_id
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	CreateConfirmed(ctx context.Context, booking model.Booking) error
	GetReceiptDetails(ctx context.Context, bookingID string) (model.ReceiptDetails, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IsRoomAvailable reports whether no booking overlaps the requested range.
// It reads outside any transaction and is advisory only;
// CreateConfirmed repeats the check under a lock before committing.
func (repo *repositoryImpl) IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (res bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".IsRoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountOverlapping)

	var overlapping int
	if err = repo.db.Read.GetContext(ctx, &overlapping, queryCountOverlapping, roomID, checkIn, checkOut); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to count overlapping bookings (%s): %w", model.EntityName, err)
	}

	return overlapping == 0, nil
}

// CreateConfirmed commits a booking in one transaction. The room row is
// locked first so two concurrent holds on the same room serialize, then the
// overlap check is repeated inside the transaction before inserting.
func (repo *repositoryImpl) CreateConfirmed(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CreateConfirmed")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	var roomID string

	err = tx.GetContext(ctx, &roomID, queryLockRoom, booking.RoomID)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.BadRequestFromString("room not found or inactive") // nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room (%s): %w", model.EntityName, err)
	}

	var overlapping int
	if err = tx.GetContext(ctx, &overlapping, queryCountOverlapping, booking.RoomID, booking.CheckIn, booking.CheckOut); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to count overlapping bookings (%s): %w", model.EntityName, err)
	}

	if overlapping > 0 {
		return failure.Conflict("room is already booked for the requested dates") // nolint:wrapcheck
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetReceiptDetails(ctx context.Context, bookingID string) (res model.ReceiptDetails, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetReceiptDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReceiptDetails)

	err = repo.db.Read.GetContext(ctx, &res, queryReceiptDetails, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return res, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get receipt details (%s): %w", model.EntityName, err)
	}

	return res, nil
}
