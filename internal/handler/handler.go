package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type TourSvc interface {
	Create(ctx context.Context, input domain.CreateTourInput) (*domain.Tour, error)
	UpdateStatus(ctx context.Context, id string, status domain.TourStatus) (*domain.Tour, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	List(ctx context.Context) ([]*domain.Tour, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Transition(ctx context.Context, id string, next domain.BookingStatus, actor, reason string) (*domain.Booking, error)
	CancelRequest(ctx context.Context, id, customerName, phone, reason string) (*domain.BookingLookup, error)
	Lookup(ctx context.Context, bookingNumber, customerName, phone string) (*domain.BookingLookup, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) (*domain.PageResult[*domain.Booking], error)
	History(ctx context.Context, id string) ([]*domain.BookingStatusEvent, error)
	Delete(ctx context.Context, id string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type LedgerSvc interface {
	Post(ctx context.Context, input domain.PostInput) (*domain.MileageTransaction, error)
	BalanceOf(ctx context.Context, userID string) (int64, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.PageResult[*domain.MileageTransaction], error)
	Reconcile(ctx context.Context, userID string) (*domain.ReconcileReport, error)
}

type ApplicationSvc interface {
	Submit(ctx context.Context, input domain.SubmitApplicationInput) (*domain.Application, error)
	MarkProcessing(ctx context.Context, id, notes string) (*domain.Application, error)
	Approve(ctx context.Context, id, notes string) (*domain.Application, *domain.MileageTransaction, error)
	Reject(ctx context.Context, id, notes string) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) (*domain.PageResult[*domain.Application], error)
}

type SummarySvc interface {
	Summary(ctx context.Context) (*domain.Summary, error)
}

type Handler struct {
	tourService        TourSvc
	bookingService     BookingSvc
	userService        UserSvc
	ledgerService      LedgerSvc
	applicationService ApplicationSvc
	summaryService     SummarySvc
}

func NewHandler(
	tourService TourSvc,
	bookingService BookingSvc,
	userService UserSvc,
	ledgerService LedgerSvc,
	applicationService ApplicationSvc,
	summaryService SummarySvc,
) *Handler {
	return &Handler{
		tourService:        tourService,
		bookingService:     bookingService,
		userService:        userService,
		ledgerService:      ledgerService,
		applicationService: applicationService,
		summaryService:     summaryService,
	}
}

func (h *Handler) Summary(c *ginext.Context) {
	summary, err := h.summaryService.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: "not_found"})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "conflict"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: "internal_error"})
	}
}

func badRequest(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: "validation_error"})
}

// pathID reads a uuid path parameter, answering 400 when it is malformed.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "invalid "+what+" id")
		return "", false
	}
	return id, true
}

func pageFromQuery(c *ginext.Context) (domain.Page, bool) {
	var p domain.Page
	for _, q := range []struct {
		key string
		dst *int
		max int
	}{{"page", &p.Page, domain.MaxPage}, {"page_size", &p.PageSize, math.MaxInt}} {
		raw := c.Query(q.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > q.max {
			badRequest(c, "invalid "+q.key)
			return p, false
		}
		*q.dst = n
	}
	return p, true
}
