package dto

type CreateTourRequest struct {
	Title           string `json:"title" binding:"required"`
	Price           int64  `json:"price" binding:"gte=0"`
	DepartureDate   string `json:"departure_date" binding:"required"`
	Status          string `json:"status"`
	MaxParticipants int    `json:"max_participants" binding:"required,gt=0"`
}

type UpdateTourStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateBookingRequest struct {
	TourID          string `json:"tour_id" binding:"required,uuid"`
	CustomerName    string `json:"customer_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Participants    int    `json:"participants" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

type LookupBookingRequest struct {
	BookingNumber string `json:"booking_number" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
}

type CancelRequestRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Reason       string `json:"reason"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type PostMileageRequest struct {
	UserID      string  `json:"user_id" binding:"required,uuid"`
	Type        string  `json:"type" binding:"required"`
	Amount      int64   `json:"amount" binding:"required"`
	Description string  `json:"description"`
	ReferenceID *string `json:"reference_id"`
}

type SubmitApplicationRequest struct {
	Type          string `json:"type" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

type DecisionRequest struct {
	Notes string `json:"notes"`
}
