package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
	nmocks "github.com/stpnv0/TravelDesk/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:             "booking-1",
		BookingNumber:  "HT202610190042",
		TourTitle:      "Jeju Island 3 days",
		CustomerName:   "Kim Minsu",
		Phone:          "010-1234-5678",
		Email:          "minsu@example.com",
		Participants:   2,
		DepartureDate:  time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		TotalAmount:    700000,
		PaymentDueDate: time.Date(2026, 10, 20, 0, 30, 0, 0, time.UTC),
		CancelReason:   "schedule changed",
	}
}

func TestNotifier_BookingCreated(t *testing.T) {
	alerter := nmocks.NewMockAdminAlerter(t)
	mailer := nmocks.NewMockMailer(t)
	n := New(alerter, mailer, newTestLogger(t))
	b := testBooking()

	alerter.EXPECT().
		NotifyAdmin(mock.Anything, "New booking", mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "Kim Minsu") && strings.Contains(msg, "700000")
		}), "HT202610190042").
		Return(nil)
	mailer.EXPECT().SendBookingConfirmation(mock.Anything, b).Return(nil)

	n.BookingCreated(context.Background(), b)
}

func TestNotifier_FailuresAreSwallowed(t *testing.T) {
	alerter := nmocks.NewMockAdminAlerter(t)
	mailer := nmocks.NewMockMailer(t)
	n := New(alerter, mailer, newTestLogger(t))
	b := testBooking()

	// The mail still goes out when the admin alert fails.
	alerter.EXPECT().NotifyAdmin(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("telegram down"))
	mailer.EXPECT().SendBookingConfirmation(mock.Anything, b).Return(errors.New("smtp down"))

	assert.NotPanics(t, func() { n.BookingCreated(context.Background(), b) })
}

func TestNotifier_AdminOnlyEvents(t *testing.T) {
	alerter := nmocks.NewMockAdminAlerter(t)
	n := New(alerter, nmocks.NewMockMailer(t), newTestLogger(t))
	b := testBooking()

	alerter.EXPECT().
		NotifyAdmin(mock.Anything, "Cancellation requested", mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "schedule changed") && strings.Contains(msg, "2026-11-02")
		}), b.BookingNumber).
		Return(nil)
	alerter.EXPECT().
		NotifyAdmin(mock.Anything, "Booking cancelled", mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "2 seats released")
		}), b.BookingNumber).
		Return(nil)
	alerter.EXPECT().
		NotifyAdmin(mock.Anything, "New withdrawal application", "User user-1 requested withdrawal of 3000.", "app-1").
		Return(nil)

	n.BookingCancelRequested(context.Background(), b)
	n.BookingCancelled(context.Background(), b)
	n.ApplicationSubmitted(context.Background(), &domain.Application{
		ID:     "app-1",
		UserID: "user-1",
		Type:   domain.ApplicationWithdrawal,
		Amount: 3000,
	})
}

func TestTelegramAlerter_Disabled(t *testing.T) {
	a, err := NewTelegramAlerter("", 0, newTestLogger(t))
	require.NoError(t, err)
	assert.NoError(t, a.NotifyAdmin(context.Background(), "title", "message", "ref"))
}

func TestFormatAlert(t *testing.T) {
	got := formatAlert("New booking", "Kim_Minsu booked *Jeju* [VIP]", "HT202610190042")
	assert.Equal(t, "*New booking*\n\nKim\\_Minsu booked \\*Jeju\\* \\[VIP]\n\nRef: `HT202610190042`", got)

	assert.Equal(t, "*t*\n\nm", formatAlert("t", "m", ""))
}

func TestSMTPMailer_NotConfigured(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{}, newTestLogger(t))
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called without smtp settings")
		return nil
	}

	assert.NoError(t, m.SendBookingConfirmation(context.Background(), testBooking()))
}

func TestSMTPMailer_Send(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "desk@example.com", Password: "secret"}
	m := NewSMTPMailer(cfg, newTestLogger(t))

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  string
	)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
		return nil
	}

	b := testBooking()
	b.CustomerName = "Kim\r\nBcc: victim@example.com"
	require.NoError(t, m.SendBookingConfirmation(context.Background(), b))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "desk@example.com", gotFrom)
	assert.Equal(t, []string{"minsu@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "From: desk@example.com\r\n")
	assert.Contains(t, gotMsg, "Subject: Booking HT202610190042 received\r\n")
	assert.Contains(t, gotMsg, "Total: 700000\r\n")
	assert.NotContains(t, gotMsg, "\r\nBcc:")
}

func TestSMTPMailer_Send_EnvelopeMatchesFromHeader(t *testing.T) {
	cfg := SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "relay-login@example.com",
		Password: "secret",
		From:     "bookings@traveldesk.example",
	}
	m := NewSMTPMailer(cfg, newTestLogger(t))

	var gotFrom, gotMsg string
	m.send = func(_ string, _ smtp.Auth, from string, _ []string, msg []byte) error {
		gotFrom, gotMsg = from, string(msg)
		return nil
	}

	require.NoError(t, m.SendBookingConfirmation(context.Background(), testBooking()))

	assert.Equal(t, "bookings@traveldesk.example", gotFrom)
	assert.Contains(t, gotMsg, "From: bookings@traveldesk.example\r\n")
	assert.NotContains(t, gotMsg, "relay-login@example.com")
}

func TestSMTPMailer_SendError(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "desk@example.com", Password: "secret"}
	m := NewSMTPMailer(cfg, newTestLogger(t))
	sendErr := errors.New("connection refused")
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return sendErr }

	err := m.SendBookingConfirmation(context.Background(), testBooking())
	assert.ErrorIs(t, err, sendErr)
	assert.Contains(t, err.Error(), "minsu@example.com")
}
