package dto

import (
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func ToPageResponse[T, R any](p *domain.PageResult[T], conv func(T) R) PageResponse[R] {
	items := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return PageResponse[R]{Items: items, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
}

type TourResponse struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Price               int64  `json:"price"`
	DepartureDate       string `json:"departure_date"`
	Status              string `json:"status"`
	MaxParticipants     int    `json:"max_participants"`
	CurrentParticipants int    `json:"current_participants"`
	AvailableSeats      int    `json:"available_seats"`
	CreatedAt           string `json:"created_at"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	BookingNumber   string `json:"booking_number"`
	TourID          string `json:"tour_id"`
	TourTitle       string `json:"tour_title"`
	CustomerName    string `json:"customer_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Participants    int    `json:"participants"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	DepartureDate   string `json:"departure_date"`
	TotalAmount     int64  `json:"total_amount"`
	PaymentDueDate  string `json:"payment_due_date"`
	CancelReason    string `json:"cancel_reason,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type RefundQuoteResponse struct {
	DaysBeforeDeparture int   `json:"days_before_departure"`
	RatePercent         int   `json:"rate_percent"`
	Amount              int64 `json:"amount"`
}

type BookingLookupResponse struct {
	Booking BookingResponse     `json:"booking"`
	Refund  RefundQuoteResponse `json:"refund"`
}

type StatusEventResponse struct {
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	Actor      string `json:"actor"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mileage   int64  `json:"mileage"`
	CreatedAt string `json:"created_at"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type MileageTransactionResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Amount          int64   `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	BalanceBefore   int64   `json:"balance_before"`
	BalanceAfter    int64   `json:"balance_after"`
	Description     string  `json:"description"`
	ReferenceID     *string `json:"reference_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type ApplicationResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Type          string  `json:"type"`
	Amount        int64   `json:"amount"`
	Status        string  `json:"status"`
	BankName      string  `json:"bank_name,omitempty"`
	AccountNumber string  `json:"account_number,omitempty"`
	AccountHolder string  `json:"account_holder,omitempty"`
	RequestDate   string  `json:"request_date"`
	ProcessedDate *string `json:"processed_date,omitempty"`
	AdminNotes    string  `json:"admin_notes,omitempty"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

type ApproveResponse struct {
	Application ApplicationResponse        `json:"application"`
	Transaction MileageTransactionResponse `json:"transaction"`
}

func ToTourResponse(t *domain.Tour) TourResponse {
	return TourResponse{
		ID:                  t.ID,
		Title:               t.Title,
		Price:               t.Price,
		DepartureDate:       t.DepartureDate.Format(dateLayout),
		Status:              string(t.Status),
		MaxParticipants:     t.MaxParticipants,
		CurrentParticipants: t.CurrentParticipants,
		AvailableSeats:      t.AvailableSeats(),
		CreatedAt:           t.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		BookingNumber:   b.BookingNumber,
		TourID:          b.TourID,
		TourTitle:       b.TourTitle,
		CustomerName:    b.CustomerName,
		Phone:           b.Phone,
		Email:           b.Email,
		Participants:    b.Participants,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		DepartureDate:   b.DepartureDate.Format(dateLayout),
		TotalAmount:     b.TotalAmount,
		PaymentDueDate:  b.PaymentDueDate.Format(time.RFC3339),
		CancelReason:    b.CancelReason,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingLookupResponse(l *domain.BookingLookup) BookingLookupResponse {
	return BookingLookupResponse{
		Booking: ToBookingResponse(l.Booking),
		Refund: RefundQuoteResponse{
			DaysBeforeDeparture: l.Refund.DaysBeforeDeparture,
			RatePercent:         l.Refund.RatePercent,
			Amount:              l.Refund.Amount,
		},
	}
}

func ToStatusEventResponse(e *domain.BookingStatusEvent) StatusEventResponse {
	return StatusEventResponse{
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		Actor:      e.Actor,
		Reason:     e.Reason,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mileage:   u.Mileage,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToMileageTransactionResponse(m *domain.MileageTransaction) MileageTransactionResponse {
	return MileageTransactionResponse{
		ID:              m.ID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		TransactionType: string(m.TransactionType),
		BalanceBefore:   m.BalanceBefore,
		BalanceAfter:    m.BalanceAfter,
		Description:     m.Description,
		ReferenceID:     m.ReferenceID,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
}

func ToApplicationResponse(a *domain.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Type:          string(a.Type),
		Amount:        a.Amount,
		Status:        string(a.Status),
		BankName:      a.Bank.BankName,
		AccountNumber: a.Bank.AccountNumber,
		AccountHolder: a.Bank.AccountHolder,
		RequestDate:   a.RequestDate.Format(time.RFC3339),
		AdminNotes:    a.AdminNotes,
		TransactionID: a.TransactionID,
	}
	if a.ProcessedDate != nil {
		p := a.ProcessedDate.Format(time.RFC3339)
		resp.ProcessedDate = &p
	}
	return resp
}
