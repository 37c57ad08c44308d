package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByNumber(ctx context.Context, bookingNumber string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int, error)
	// ApplyStatusChange moves the booking from ch.From to ch.To, records the
	// status event and releases seats when ch.Release is set, all atomically.
	ApplyStatusChange(ctx context.Context, ch domain.StatusChange) (*domain.Booking, error)
	// Delete removes the booking and gives back its seats if it still held any.
	Delete(ctx context.Context, id string) (*domain.Booking, error)
	ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	History(ctx context.Context, bookingID string) ([]*domain.BookingStatusEvent, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
}
