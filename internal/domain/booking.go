package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending          BookingStatus = "pending"
	BookingStatusPaymentPending   BookingStatus = "payment_pending"
	BookingStatusPaymentCompleted BookingStatus = "payment_completed"
	BookingStatusPaymentExpired   BookingStatus = "payment_expired"
	BookingStatusConfirmed        BookingStatus = "confirmed"
	BookingStatusCancelRequested  BookingStatus = "cancel_requested"
	BookingStatusCancelled        BookingStatus = "cancelled"
	BookingStatusRefundCompleted  BookingStatus = "refund_completed"
)

// AwaitingPaymentStatuses are the entry states; "pending" is a legacy alias.
var AwaitingPaymentStatuses = []BookingStatus{BookingStatusPaymentPending, BookingStatusPending}

// TerminalStatuses never hold seats and have no outgoing transitions.
var TerminalStatuses = []BookingStatus{
	BookingStatusCancelled,
	BookingStatusRefundCompleted,
	BookingStatusPaymentExpired,
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPaymentPending: {
		BookingStatusPaymentCompleted,
		BookingStatusPaymentExpired,
		BookingStatusCancelRequested,
		BookingStatusCancelled,
	},
	BookingStatusPaymentCompleted: {BookingStatusConfirmed},
	BookingStatusConfirmed:        {BookingStatusCancelRequested},
	BookingStatusCancelRequested:  {BookingStatusCancelled, BookingStatusRefundCompleted},
}

// Normalize folds the legacy "pending" alias into payment_pending.
func (s BookingStatus) Normalize() BookingStatus {
	if s == BookingStatusPending {
		return BookingStatusPaymentPending
	}
	return s
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusPaymentPending, BookingStatusPaymentCompleted,
		BookingStatusPaymentExpired, BookingStatusConfirmed, BookingStatusCancelRequested,
		BookingStatusCancelled, BookingStatusRefundCompleted:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// HoldsCapacity reports whether a booking in this status still occupies seats.
func (s BookingStatus) HoldsCapacity() bool {
	return s.Valid() && !s.Terminal()
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s.Normalize()] {
		if allowed == next.Normalize() {
			return true
		}
	}
	return false
}

// ReleasesCapacity reports whether moving from s to next must give the seats back.
func (s BookingStatus) ReleasesCapacity(next BookingStatus) bool {
	return s.HoldsCapacity() && !next.HoldsCapacity()
}

type Booking struct {
	ID              string        `json:"id"`
	BookingNumber   string        `json:"booking_number"`
	TourID          string        `json:"tour_id"`
	TourTitle       string        `json:"tour_title"`
	CustomerName    string        `json:"customer_name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	Participants    int           `json:"participants"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	DepartureDate   time.Time     `json:"departure_date"`
	TotalAmount     int64         `json:"total_amount"`
	PaymentDueDate  time.Time     `json:"payment_due_date"`
	CancelReason    string        `json:"cancel_reason"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// MatchesCustomer is the identity check used instead of full auth for
// customer self-service operations.
func (b *Booking) MatchesCustomer(customerName, phone string) bool {
	return b.CustomerName == customerName && b.Phone == phone
}

type BookingStatusEvent struct {
	ID         string        `json:"id"`
	BookingID  string        `json:"booking_id"`
	FromStatus BookingStatus `json:"from_status"`
	ToStatus   BookingStatus `json:"to_status"`
	Actor      string        `json:"actor"`
	Reason     string        `json:"reason"`
	CreatedAt  time.Time     `json:"created_at"`
}

// StatusChange describes one guarded transition applied by the repository.
type StatusChange struct {
	BookingID string
	From      BookingStatus
	To        BookingStatus
	Actor     string
	Reason    string
	At        time.Time
	// Release is set when the transition must return seats to the tour.
	Release bool
}

type CreateBookingInput struct {
	TourID          string
	CustomerName    string
	Phone           string
	Email           string
	Participants    int
	SpecialRequests string
}

type BookingFilter struct {
	TourID string
	Status BookingStatus
	Page   Page
}

// RefundQuote is informational; admins perform the actual refund.
type RefundQuote struct {
	DaysBeforeDeparture int   `json:"days_before_departure"`
	RatePercent         int   `json:"rate_percent"`
	Amount              int64 `json:"amount"`
}

const (
	ActorCustomer  = "customer"
	ActorAdmin     = "admin"
	ActorScheduler = "scheduler"
)

// BookingLookup is what a customer sees about their own booking.
type BookingLookup struct {
	Booking *Booking    `json:"booking"`
	Refund  RefundQuote `json:"refund"`
}
