package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var (
	kst     = time.FixedZone("KST", 9*60*60)
	fixedAt = time.Date(2026, 10, 19, 0, 30, 0, 0, time.UTC) // 09:30 KST
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock() time.Time { return fixedAt }

// waitCalled blocks until a notifier goroutine has run.
func waitCalled(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

type bookingMocks struct {
	tours    *mocks.MockTourRepo
	bookings *mocks.MockBookingRepo
	notifier *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		tours:    mocks.NewMockTourRepo(t),
		bookings: mocks.NewMockBookingRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}

	capacity := NewCapacityLedger(m.tours, kst)
	capacity.now = fixedClock

	svc := NewBookingService(m.bookings, capacity, m.notifier, BookingPolicy{Location: kst}, newTestLogger(t))
	svc.now = fixedClock
	svc.suffix = func() int { return 42 }

	return svc, m
}

func validBookingInput(tourID string) domain.CreateBookingInput {
	return domain.CreateBookingInput{
		TourID:       tourID,
		CustomerName: "Kim",
		Phone:        "010-1234-5678",
		Email:        "kim@example.com",
		Participants: 2,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	departure := date(2026, 11, 1)
	m.tours.EXPECT().Reserve(mock.Anything, "t1", 2, date(2026, 10, 19)).Return(&domain.TourSnapshot{
		TourID: "t1", Title: "Jeju 3D", Price: 100000, DepartureDate: departure,
	}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	notified := make(chan struct{})
	m.notifier.EXPECT().BookingCreated(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking) { close(notified) }).Return()

	b, err := svc.Create(context.Background(), validBookingInput("t1"))

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPaymentPending, b.Status)
	assert.Equal(t, "Jeju 3D", b.TourTitle)
	assert.Equal(t, int64(200000), b.TotalAmount)
	assert.Equal(t, departure, b.DepartureDate)
	assert.Equal(t, "HT202610190042", b.BookingNumber)
	assert.Equal(t, fixedAt.Add(24*time.Hour), b.PaymentDueDate)
	assert.NotEmpty(t, b.ID)

	waitCalled(t, notified)
}

func TestBookingService_Create_NearDepartureUsesFallback(t *testing.T) {
	svc, m := newBookingService(t)

	// departure tomorrow: departure-72h is already past, so now+2h
	m.tours.EXPECT().Reserve(mock.Anything, "t1", 2, mock.Anything).Return(&domain.TourSnapshot{
		TourID: "t1", Price: 1, DepartureDate: date(2026, 10, 20),
	}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().BookingCreated(mock.Anything, mock.Anything).Return().Maybe()

	b, err := svc.Create(context.Background(), validBookingInput("t1"))

	require.NoError(t, err)
	assert.Equal(t, fixedAt.Add(2*time.Hour), b.PaymentDueDate)
}

func TestBookingService_Create_RetriesBookingNumber(t *testing.T) {
	svc, m := newBookingService(t)

	suffixes := []int{7, 8}
	svc.suffix = func() int {
		n := suffixes[0]
		suffixes = suffixes[1:]
		return n
	}

	m.tours.EXPECT().Reserve(mock.Anything, "t1", 2, mock.Anything).Return(&domain.TourSnapshot{
		TourID: "t1", Price: 10, DepartureDate: date(2026, 12, 1),
	}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateBookingNumber).Once()
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	m.notifier.EXPECT().BookingCreated(mock.Anything, mock.Anything).Return().Maybe()

	b, err := svc.Create(context.Background(), validBookingInput("t1"))

	require.NoError(t, err)
	assert.Equal(t, "HT202610190008", b.BookingNumber)
}

func TestBookingService_Create_ReleasesSeatsOnInsertFailure(t *testing.T) {
	svc, m := newBookingService(t)

	m.tours.EXPECT().Reserve(mock.Anything, "t1", 2, mock.Anything).Return(&domain.TourSnapshot{
		TourID: "t1", Price: 10, DepartureDate: date(2026, 12, 1),
	}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	m.tours.EXPECT().Release(mock.Anything, "t1", 2).Return(nil)

	_, err := svc.Create(context.Background(), validBookingInput("t1"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestBookingService_Create_NumberAttemptsExhausted(t *testing.T) {
	svc, m := newBookingService(t)

	m.tours.EXPECT().Reserve(mock.Anything, "t1", 2, mock.Anything).Return(&domain.TourSnapshot{
		TourID: "t1", Price: 10, DepartureDate: date(2026, 12, 1),
	}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateBookingNumber).Times(5)
	m.tours.EXPECT().Release(mock.Anything, "t1", 2).Return(nil)

	_, err := svc.Create(context.Background(), validBookingInput("t1"))

	assert.ErrorIs(t, err, domain.ErrDuplicateBookingNumber)
}

func TestBookingService_Create_NoCapacity(t *testing.T) {
	svc, m := newBookingService(t)

	m.tours.EXPECT().Reserve(mock.Anything, "t1", 2, mock.Anything).Return(nil, domain.ErrInsufficientCapacity)

	_, err := svc.Create(context.Background(), validBookingInput("t1"))

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.CreateBookingInput)
	}{
		{"bad phone", func(in *domain.CreateBookingInput) { in.Phone = "12345" }},
		{"bad email", func(in *domain.CreateBookingInput) { in.Email = "kim-at-example" }},
		{"no name", func(in *domain.CreateBookingInput) { in.CustomerName = "  " }},
		{"zero participants", func(in *domain.CreateBookingInput) { in.Participants = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)
			in := validBookingInput("t1")
			tt.modify(&in)

			_, err := svc.Create(context.Background(), in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Transition_Illegal(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID: "b1", Status: domain.BookingStatusPending,
	}, nil)

	_, err := svc.Transition(context.Background(), "b1", domain.BookingStatusRefundCompleted, domain.ActorAdmin, "")

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestBookingService_Transition_UnknownStatus(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Transition(context.Background(), "b1", "shipped", domain.ActorAdmin, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Transition_CancelReleasesSeats(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID: "b1", TourID: "t1", Participants: 2, Status: domain.BookingStatusPaymentPending,
	}, nil)
	m.bookings.EXPECT().
		ApplyStatusChange(mock.Anything, domain.StatusChange{
			BookingID: "b1",
			From:      domain.BookingStatusPaymentPending,
			To:        domain.BookingStatusCancelled,
			Actor:     domain.ActorAdmin,
			Reason:    "customer called",
			At:        fixedAt,
			Release:   true,
		}).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, nil)

	notified := make(chan struct{})
	m.notifier.EXPECT().BookingCancelled(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking) { close(notified) }).Return()

	b, err := svc.Transition(context.Background(), "b1", domain.BookingStatusCancelled, domain.ActorAdmin, "customer called")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	waitCalled(t, notified)
}

func TestBookingService_Transition_PaymentCompletedKeepsSeats(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID: "b1", Status: domain.BookingStatusPaymentPending,
	}, nil)
	m.bookings.EXPECT().
		ApplyStatusChange(mock.Anything, mock.MatchedBy(func(ch domain.StatusChange) bool {
			return ch.To == domain.BookingStatusPaymentCompleted && !ch.Release
		})).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPaymentCompleted}, nil)

	_, err := svc.Transition(context.Background(), "b1", domain.BookingStatusPaymentCompleted, domain.ActorAdmin, "")

	require.NoError(t, err)
}

func TestBookingService_Transition_LostRace(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID: "b1", Status: domain.BookingStatusPaymentPending,
	}, nil)
	m.bookings.EXPECT().ApplyStatusChange(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingStatusChanged)

	_, err := svc.Transition(context.Background(), "b1", domain.BookingStatusPaymentCompleted, domain.ActorAdmin, "")

	assert.ErrorIs(t, err, domain.ErrBookingStatusChanged)
}

func TestBookingService_CancelRequest_DepartureToday(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID: "b1", CustomerName: "Kim", Phone: "010-1234-5678",
		Status: domain.BookingStatusConfirmed, DepartureDate: date(2026, 10, 19),
	}, nil)

	_, err := svc.CancelRequest(context.Background(), "b1", "Kim", "010-1234-5678", "")

	assert.ErrorIs(t, err, domain.ErrCancelWindowClosed)
}

func TestBookingService_CancelRequest_DepartureTomorrow(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID: "b1", CustomerName: "Kim", Phone: "010-1234-5678", TotalAmount: 100000,
		Status: domain.BookingStatusConfirmed, DepartureDate: date(2026, 10, 20),
	}, nil)
	m.bookings.EXPECT().
		ApplyStatusChange(mock.Anything, mock.MatchedBy(func(ch domain.StatusChange) bool {
			return ch.To == domain.BookingStatusCancelRequested && ch.Actor == domain.ActorCustomer && !ch.Release
		})).
		Return(&domain.Booking{
			ID: "b1", TotalAmount: 100000, Status: domain.BookingStatusCancelRequested, DepartureDate: date(2026, 10, 20),
		}, nil)

	notified := make(chan struct{})
	m.notifier.EXPECT().BookingCancelRequested(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking) { close(notified) }).Return()

	res, err := svc.CancelRequest(context.Background(), "b1", " Kim ", "010-1234-5678", "schedule clash")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelRequested, res.Booking.Status)
	assert.Equal(t, 1, res.Refund.DaysBeforeDeparture)
	assert.Equal(t, 50, res.Refund.RatePercent)
	assert.Equal(t, int64(50000), res.Refund.Amount)
	waitCalled(t, notified)
}

func TestBookingService_CancelRequest_IdentityMismatch(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID: "b1", CustomerName: "Kim", Phone: "010-1234-5678", Status: domain.BookingStatusConfirmed,
	}, nil)

	_, err := svc.CancelRequest(context.Background(), "b1", "Kim", "010-9999-9999", "")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Lookup(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByNumber(mock.Anything, "HT202610190042").Return(&domain.Booking{
		ID: "b1", BookingNumber: "HT202610190042", CustomerName: "Kim", Phone: "010-1234-5678",
		TotalAmount: 100000, DepartureDate: date(2026, 10, 24),
	}, nil)

	res, err := svc.Lookup(context.Background(), " ht202610190042 ", "Kim", "010-1234-5678")

	require.NoError(t, err)
	assert.Equal(t, 5, res.Refund.DaysBeforeDeparture)
	assert.Equal(t, 80, res.Refund.RatePercent)
}

func TestBookingService_Lookup_Malformed(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Lookup(context.Background(), "HT-1", "Kim", "010-1234-5678")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ExpireOverdue(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().ExpireOverdue(mock.Anything, fixedAt).Return([]*domain.Booking{{ID: "b1"}}, nil)

	expired, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, expired, 1)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().Delete(mock.Anything, "b1").Return(nil, domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
