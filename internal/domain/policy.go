package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PaymentPolicy holds the windows used to compute a booking's payment deadline.
type PaymentPolicy struct {
	Window          time.Duration
	DepartureCutoff time.Duration
	Fallback        time.Duration
}

var DefaultPaymentPolicy = PaymentPolicy{
	Window:          24 * time.Hour,
	DepartureCutoff: 72 * time.Hour,
	Fallback:        2 * time.Hour,
}

// PaymentDueDate returns min(now+Window, departure-DepartureCutoff), or
// now+Fallback when that deadline is not strictly in the future.
func (p PaymentPolicy) PaymentDueDate(now, departure time.Time) time.Time {
	due := now.Add(p.Window)
	if cutoff := departure.Add(-p.DepartureCutoff); cutoff.Before(due) {
		due = cutoff
	}
	if !due.After(now) {
		due = now.Add(p.Fallback)
	}
	return due
}

// Today is the calendar date of now in loc, expressed as a date-only value.
func Today(now time.Time, loc *time.Location) time.Time {
	return CalendarDate(now.In(loc))
}

// CalendarDate drops the time of day and zone, keeping t's own year, month
// and day. Departure dates are stored this way.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DepartureInstant is midnight of the departure date in loc.
func DepartureInstant(departure time.Time, loc *time.Location) time.Time {
	return time.Date(departure.Year(), departure.Month(), departure.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween counts calendar days between two date-only values.
func DaysBetween(from, to time.Time) int {
	return int(CalendarDate(to).Sub(CalendarDate(from)).Hours() / 24)
}

// RefundRate is the cancellation refund percentage by days left before departure.
func RefundRate(daysBeforeDeparture int) int {
	switch {
	case daysBeforeDeparture >= 7:
		return 100
	case daysBeforeDeparture >= 3:
		return 80
	case daysBeforeDeparture >= 1:
		return 50
	default:
		return 0
	}
}

func RefundAmount(total int64, ratePercent int) int64 {
	return total * int64(ratePercent) / 100
}

func QuoteRefund(b *Booking, today time.Time) RefundQuote {
	days := DaysBetween(today, b.DepartureDate)
	rate := RefundRate(days)
	return RefundQuote{
		DaysBeforeDeparture: days,
		RatePercent:         rate,
		Amount:              RefundAmount(b.TotalAmount, rate),
	}
}

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^01[016789]-\d{3,4}-\d{4}$`)
	// HT + YYYYMMDD + 4 digits
	bookingNumberPattern = regexp.MustCompile(`^HT\d{8}\d{4}$`)
)

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}

func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: phone must look like 010-1234-5678", ErrValidation)
	}
	return nil
}

func ValidBookingNumber(n string) bool {
	return bookingNumberPattern.MatchString(n)
}

// FormatBookingNumber builds HT + YYYYMMDD + zero-padded suffix.
func FormatBookingNumber(created time.Time, suffix int) string {
	return fmt.Sprintf("HT%s%04d", created.Format("20060102"), suffix%10000)
}

func (in CreateBookingInput) Validate() error {
	if strings.TrimSpace(in.TourID) == "" {
		return fmt.Errorf("%w: tour_id is required", ErrValidation)
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name is required", ErrValidation)
	}
	if err := ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := ValidatePhone(in.Phone); err != nil {
		return err
	}
	if in.Participants < 1 {
		return fmt.Errorf("%w: participants must be at least 1", ErrValidation)
	}
	return nil
}
