package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	ExpireOverdue(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler sweeps bookings whose payment deadline has passed into
// payment_expired, which also gives their seats back to the tour.
type Scheduler struct {
	bookings bookingExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(bookings bookingExpirer, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		bookings: bookings,
		interval: interval,
		logger:   logger,
	}
}

// Start sweeps once right away, then on every tick until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("payment expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("payment expiry scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep returns the seats released per tour. A sweep never outlives one
// interval, so a stuck database cannot pile sweeps up.
func (s *Scheduler) sweep(ctx context.Context) map[string]int {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	expired, err := s.bookings.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue bookings",
			logger.String("error", err.Error()),
		)
		return nil
	}
	if len(expired) == 0 {
		return nil
	}

	released := make(map[string]int)
	for _, b := range expired {
		released[b.TourID] += b.Participants
		s.logger.Debug("booking payment expired",
			logger.String("booking_id", b.ID),
			logger.String("booking_number", b.BookingNumber),
		)
	}
	for tourID, seats := range released {
		s.logger.Info("seats released by payment expiry",
			logger.String("tour_id", tourID),
			logger.Int("seats", seats),
		)
	}

	return released
}
