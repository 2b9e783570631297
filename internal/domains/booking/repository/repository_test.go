package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farn/infras/otel/mocks"
	"farn/infras/postgres"
	"farn/internal/domains/booking/model"
	"farn/internal/domains/booking/repository"
	"farn/shared/failure"
	gModel "farn/shared/model"
	"farn/shared/timezone"
)

// Pins the half-open overlap predicate down to its strict comparison
// operators; back-to-back stays sharing an endpoint must not count.
const queryOverlap = `SELECT COUNT\(\*\)\s+FROM bookings\s+WHERE room_id = \$1\s+AND check_out > \$2\s+AND check_in < \$3`

func newMockRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{
		Read:  sqlx.NewDb(db, "postgres"),
		Write: sqlx.NewDb(db, "postgres"),
	}

	return repository.New(conn, mocks.NewOtel()), mock
}

func testBooking() model.Booking {
	return model.Booking{
		ID:            "booking-id",
		GuestID:       "guest-id",
		RoomID:        "room-id",
		CheckIn:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		PaymentMethod: model.PaymentMethodCash,
		TotalAmount:   300,
		Status:        model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestBookingRepository_IsRoomAvailable(t *testing.T) {
	tests := []struct {
		name        string
		overlapping int
		want        bool
	}{
		{name: "no overlapping bookings", overlapping: 0, want: true},
		{name: "one overlapping booking", overlapping: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
			checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

			mock.ExpectQuery(queryOverlap).
				WithArgs("room-id", checkIn, checkOut).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.overlapping))

			available, err := repo.IsRoomAvailable(context.Background(), "room-id", checkIn, checkOut)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, available)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_CreateConfirmed(t *testing.T) {
	booking := testBooking()

	t.Run("commits when the room is free", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 AND active FOR UPDATE`).
			WithArgs(booking.RoomID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(booking.RoomID))
		mock.ExpectQuery(queryOverlap).
			WithArgs(booking.RoomID, booking.CheckIn, booking.CheckOut).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateConfirmed(context.Background(), booking)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the room row is missing or inactive", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 AND active FOR UPDATE`).
			WithArgs(booking.RoomID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.CreateConfirmed(context.Background(), booking)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when an overlapping booking sneaks in", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 AND active FOR UPDATE`).
			WithArgs(booking.RoomID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(booking.RoomID))
		mock.ExpectQuery(queryOverlap).
			WithArgs(booking.RoomID, booking.CheckIn, booking.CheckOut).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err := repo.CreateConfirmed(context.Background(), booking)

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_GetReceiptDetails(t *testing.T) {
	columns := []string{
		"booking_id", "guest_name", "guest_email", "room_number", "room_type",
		"check_in", "check_out", "payment_method", "total_amount", "created_at",
	}

	t.Run("joined details for an existing booking", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`FROM bookings b\s+JOIN guests g`).
			WithArgs("booking-id").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				"booking-id", "Asha Rao", "asha@example.com", "101", "deluxe",
				checkIn, checkOut, "cash", 300.0, timezone.Now(),
			))

		details, err := repo.GetReceiptDetails(context.Background(), "booking-id")

		assert.NoError(t, err)
		assert.Equal(t, "booking-id", details.BookingID)
		assert.Equal(t, "asha@example.com", details.GuestEmail)
		assert.Equal(t, "101", details.RoomNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown booking yields an empty result", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`FROM bookings b\s+JOIN guests g`).
			WithArgs("missing-id").
			WillReturnRows(sqlmock.NewRows(columns))

		details, err := repo.GetReceiptDetails(context.Background(), "missing-id")

		assert.NoError(t, err)
		assert.Empty(t, details.BookingID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
