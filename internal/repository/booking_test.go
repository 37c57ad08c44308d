package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{"id", "booking_number", "tour_id", "tour_title", "customer_name", "phone", "email",
	"participants", "special_requests", "status", "departure_date", "total_amount",
	"payment_due_date", "cancel_reason", "created_at", "updated_at"}

func testBooking() *domain.Booking {
	created := time.Date(2026, 10, 19, 0, 30, 0, 0, time.UTC)
	return &domain.Booking{
		ID:             "booking-1",
		BookingNumber:  "HT202610190042",
		TourID:         "tour-1",
		TourTitle:      "Jeju Island 3 days",
		CustomerName:   "Kim Minsu",
		Phone:          "010-1234-5678",
		Email:          "minsu@example.com",
		Participants:   2,
		Status:         domain.BookingStatusPaymentPending,
		DepartureDate:  departure,
		TotalAmount:    700000,
		PaymentDueDate: created.Add(24 * time.Hour),
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func bookingRow(b *domain.Booking, status domain.BookingStatus) []driver.Value {
	return []driver.Value{
		b.ID, b.BookingNumber, b.TourID, b.TourTitle, b.CustomerName, b.Phone, b.Email,
		b.Participants, b.SpecialRequests, string(status), b.DepartureDate, b.TotalAmount,
		b.PaymentDueDate, b.CancelReason, b.CreatedAt, b.UpdatedAt,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	b := testBooking()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(b.ID, b.BookingNumber, b.TourID, b.TourTitle, b.CustomerName, b.Phone, b.Email,
			b.Participants, b.SpecialRequests, "payment_pending", b.DepartureDate, b.TotalAmount,
			b.PaymentDueDate, b.CancelReason, b.CreatedAt, b.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO booking_status_events`).
		WithArgs(sqlmock.AnyArg(), b.ID, "", "payment_pending", domain.ActorCustomer, "booking created", b.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewBookingRepo(db).Create(context.Background(), b))
}

func TestBookingRepository_Create_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    pq.ErrorCode
		wantErr error
	}{
		{name: "booking number taken", code: "23505", wantErr: domain.ErrDuplicateBookingNumber},
		{name: "tour gone", code: "23503", wantErr: domain.ErrTourNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO bookings`).WillReturnError(&pq.Error{Code: tt.code})
			mock.ExpectRollback()

			err := NewBookingRepo(db).Create(context.Background(), testBooking())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingRepository_ApplyStatusChange(t *testing.T) {
	db, mock := newMockDB(t)
	b := testBooking()
	at := b.CreatedAt.Add(time.Hour)

	ch := domain.StatusChange{
		BookingID: b.ID,
		From:      domain.BookingStatusPaymentPending,
		To:        domain.BookingStatusCancelled,
		Actor:     domain.ActorAdmin,
		Reason:    "customer called",
		At:        at,
		Release:   true,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE bookings\s+SET status = \$3`).
		WithArgs(b.ID, "payment_pending", "cancelled", "customer called", at).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(b, domain.BookingStatusCancelled)...))
	mock.ExpectExec(`INSERT INTO booking_status_events`).
		WithArgs(sqlmock.AnyArg(), b.ID, "payment_pending", "cancelled", domain.ActorAdmin, "customer called", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`GREATEST\(current_participants - \$2, 0\)`).
		WithArgs(b.TourID, b.Participants).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := NewBookingRepo(db).ApplyStatusChange(context.Background(), ch)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, updated.Status)
}

func TestBookingRepository_ApplyStatusChange_NoMatch(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		wantErr error
	}{
		{name: "status moved on", exists: true, wantErr: domain.ErrBookingStatusChanged},
		{name: "booking gone", exists: false, wantErr: domain.ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectBegin()
			mock.ExpectQuery(`UPDATE bookings`).WillReturnRows(sqlmock.NewRows(bookingCols))
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs("booking-1").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			mock.ExpectRollback()

			_, err := NewBookingRepo(db).ApplyStatusChange(context.Background(), domain.StatusChange{
				BookingID: "booking-1",
				From:      domain.BookingStatusPaymentPending,
				To:        domain.BookingStatusPaymentCompleted,
				Actor:     domain.ActorAdmin,
				At:        today,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingRepository_Delete_ReleasesHeldSeats(t *testing.T) {
	db, mock := newMockDB(t)
	b := testBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(b.ID).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(b, domain.BookingStatusConfirmed)...))
	mock.ExpectExec(`GREATEST`).
		WithArgs(b.TourID, b.Participants).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM bookings`).
		WithArgs(b.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := NewBookingRepo(db).Delete(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, deleted.Status)
}

func TestBookingRepository_Delete_KeepsReleasedSeats(t *testing.T) {
	db, mock := newMockDB(t)
	b := testBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(b, domain.BookingStatusCancelled)...))
	mock.ExpectExec(`DELETE FROM bookings`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := NewBookingRepo(db).Delete(context.Background(), b.ID)
	require.NoError(t, err)
}

func TestBookingRepository_GetByNumber_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`WHERE booking_number = \$1`).
		WithArgs("HT202610190001").
		WillReturnRows(sqlmock.NewRows(bookingCols))

	_, err := NewBookingRepo(db).GetByNumber(context.Background(), "HT202610190001")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_ExpireOverdue(t *testing.T) {
	db, mock := newMockDB(t)
	b := testBooking()
	now := b.PaymentDueDate.Add(time.Minute)

	mock.ExpectQuery(`WITH due AS`).
		WithArgs("payment_expired", sqlmock.AnyArg(), now, domain.ActorScheduler).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(b, domain.BookingStatusPaymentExpired)...))

	expired, err := NewBookingRepo(db).ExpireOverdue(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, domain.BookingStatusPaymentExpired, expired[0].Status)
}
