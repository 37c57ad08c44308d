package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	capacity    *CapacityLedger
	notifier    ports.BookingNotifier
	logger      logger.Logger
	policy      BookingPolicy
	now         func() time.Time
	suffix      func() int
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	capacity *CapacityLedger,
	notifier ports.BookingNotifier,
	policy BookingPolicy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		capacity:    capacity,
		notifier:    notifier,
		logger:      logger,
		policy:      policy.withDefaults(),
		now:         utcNow,
		suffix:      func() int { return rand.IntN(10000) },
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Seats first: a stored booking always has its seats.
	snap, err := s.capacity.Reserve(ctx, input.TourID, input.Participants)
	if err != nil {
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	now := s.now()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		TourID:          snap.TourID,
		TourTitle:       snap.Title,
		CustomerName:    input.CustomerName,
		Phone:           input.Phone,
		Email:           input.Email,
		Participants:    input.Participants,
		SpecialRequests: input.SpecialRequests,
		Status:          domain.BookingStatusPaymentPending,
		DepartureDate:   snap.DepartureDate,
		TotalAmount:     snap.Price * int64(input.Participants),
		PaymentDueDate: s.policy.Payment.PaymentDueDate(
			now, domain.DepartureInstant(snap.DepartureDate, s.policy.Location),
		),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.persist(ctx, booking); err != nil {
		if relErr := s.capacity.Release(context.WithoutCancel(ctx), snap.TourID, input.Participants); relErr != nil {
			s.logger.Error("failed to release seats after booking insert failure",
				logger.String("tour_id", snap.TourID),
				logger.Int("participants", input.Participants),
				logger.String("error", relErr.Error()),
			)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("booking_number", booking.BookingNumber),
		logger.String("tour_id", booking.TourID),
		logger.Int("participants", booking.Participants),
	)

	go s.notifier.BookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// persist draws booking numbers until one is free or the attempts run out.
func (s *BookingService) persist(ctx context.Context, b *domain.Booking) error {
	created := b.CreatedAt.In(s.policy.Location)

	var err error
	for attempt := 1; attempt <= s.policy.NumberAttempts; attempt++ {
		b.BookingNumber = domain.FormatBookingNumber(created, s.suffix())
		err = s.bookingRepo.Create(ctx, b)
		if !errors.Is(err, domain.ErrDuplicateBookingNumber) {
			return err
		}
		s.logger.Warn("booking number collision",
			logger.String("booking_number", b.BookingNumber),
			logger.Int("attempt", attempt),
		)
	}
	return err
}

func (s *BookingService) Transition(ctx context.Context, id string, next domain.BookingStatus, actor, reason string) (*domain.Booking, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, next)
	}
	next = next.Normalize()

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	updated, err := s.apply(ctx, b, next, actor, reason)
	if err != nil {
		return nil, err
	}

	if next == domain.BookingStatusCancelled {
		go s.notifier.BookingCancelled(context.WithoutCancel(ctx), updated)
	}

	return updated, nil
}

func (s *BookingService) apply(ctx context.Context, b *domain.Booking, next domain.BookingStatus, actor, reason string) (*domain.Booking, error) {
	if !b.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, b.Status, next)
	}

	ch := domain.StatusChange{
		BookingID: b.ID,
		From:      b.Status,
		To:        next,
		Actor:     actor,
		Reason:    reason,
		At:        s.now(),
		Release:   b.Status.ReleasesCapacity(next),
	}
	updated, err := s.bookingRepo.ApplyStatusChange(ctx, ch)
	if err != nil {
		return nil, fmt.Errorf("apply status change: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("from", string(ch.From)),
		logger.String("to", string(ch.To)),
		logger.String("actor", actor),
		logger.Any("seats_released", ch.Release),
	)

	return updated, nil
}

// CancelRequest is the customer's own cancellation. The seats stay reserved
// until an admin finishes the cancellation.
func (s *BookingService) CancelRequest(ctx context.Context, id, customerName, phone, reason string) (*domain.BookingLookup, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	// A mismatch looks exactly like a missing booking.
	if !b.MatchesCustomer(strings.TrimSpace(customerName), strings.TrimSpace(phone)) {
		return nil, domain.ErrBookingNotFound
	}

	today := domain.Today(s.now(), s.policy.Location)
	if !domain.CalendarDate(b.DepartureDate).After(today) {
		return nil, domain.ErrCancelWindowClosed
	}

	updated, err := s.apply(ctx, b, domain.BookingStatusCancelRequested, domain.ActorCustomer, reason)
	if err != nil {
		return nil, err
	}

	go s.notifier.BookingCancelRequested(context.WithoutCancel(ctx), updated)

	return &domain.BookingLookup{Booking: updated, Refund: domain.QuoteRefund(updated, today)}, nil
}

func (s *BookingService) Lookup(ctx context.Context, bookingNumber, customerName, phone string) (*domain.BookingLookup, error) {
	bookingNumber = strings.ToUpper(strings.TrimSpace(bookingNumber))
	if !domain.ValidBookingNumber(bookingNumber) {
		return nil, fmt.Errorf("%w: malformed booking number", domain.ErrValidation)
	}

	b, err := s.bookingRepo.GetByNumber(ctx, bookingNumber)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !b.MatchesCustomer(strings.TrimSpace(customerName), strings.TrimSpace(phone)) {
		return nil, domain.ErrBookingNotFound
	}

	today := domain.Today(s.now(), s.policy.Location)
	return &domain.BookingLookup{Booking: b, Refund: domain.QuoteRefund(b, today)}, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) (*domain.PageResult[*domain.Booking], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, filter.Status)
	}
	items, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return domain.NewPageResult(items, total, filter.Page), nil
}

func (s *BookingService) History(ctx context.Context, id string) ([]*domain.BookingStatusEvent, error) {
	return s.bookingRepo.History(ctx, id)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	b, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", b.ID),
		logger.String("status", string(b.Status)),
		logger.Any("seats_released", b.Status.HoldsCapacity()),
	)

	return nil
}

func (s *BookingService) ExpireOverdue(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpireOverdue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("overdue bookings expired",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}
