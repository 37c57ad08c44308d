package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentPolicy_PaymentDueDate(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	p := DefaultPaymentPolicy

	tests := []struct {
		name      string
		departure time.Time
		want      time.Time
	}{
		{"far departure uses payment window", now.AddDate(0, 0, 10), now.Add(24 * time.Hour)},
		{"cutoff earlier than window", now.Add(90 * time.Hour), now.Add(18 * time.Hour)},
		{"cutoff already passed uses fallback", now.AddDate(0, 0, 1), now.Add(2 * time.Hour)},
		{"cutoff exactly now uses fallback", now.Add(72 * time.Hour), now.Add(2 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.PaymentDueDate(now, tt.departure))
		})
	}
}

func TestRefundRate(t *testing.T) {
	tests := []struct {
		days int
		rate int
	}{
		{30, 100}, {7, 100}, {6, 80}, {3, 80}, {2, 50}, {1, 50}, {0, 0}, {-3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rate, RefundRate(tt.days), "days=%d", tt.days)
	}
}

func TestQuoteRefund(t *testing.T) {
	b := &Booking{TotalAmount: 333333, DepartureDate: time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)}
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	q := QuoteRefund(b, today)

	assert.Equal(t, 5, q.DaysBeforeDeparture)
	assert.Equal(t, 80, q.RatePercent)
	assert.Equal(t, int64(266666), q.Amount)
}

func TestToday_UsesLocation(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	// 20:00 UTC on the 19th is already the 20th in Seoul
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), Today(now, kst))
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), Today(now, time.UTC))
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 10, 20, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(from, to))
	assert.Equal(t, -1, DaysBetween(to, from))
	assert.Equal(t, 0, DaysBetween(from, from))
}

func TestBookingNumber(t *testing.T) {
	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "HT202610190042", FormatBookingNumber(created, 42))
	assert.Equal(t, "HT202610190000", FormatBookingNumber(created, 10000))
	assert.True(t, ValidBookingNumber("HT202610190042"))
	assert.False(t, ValidBookingNumber("HT2026101942"))
	assert.False(t, ValidBookingNumber("XX202610190042"))
}

func TestValidatePhone(t *testing.T) {
	for _, ok := range []string{"010-1234-5678", "011-123-4567", "019-9999-0000"} {
		assert.NoError(t, ValidatePhone(ok), ok)
	}
	for _, bad := range []string{"01012345678", "020-1234-5678", "010-12-5678", "+82-10-1234-5678", ""} {
		assert.ErrorIs(t, ValidatePhone(bad), ErrValidation, bad)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("kim.lee+trip@example.co.kr"))
	assert.ErrorIs(t, ValidateEmail("kim@localhost"), ErrValidation)
	assert.ErrorIs(t, ValidateEmail("@example.com"), ErrValidation)
}
