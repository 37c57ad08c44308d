package ports

import (
	"context"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

// BookingNotifier is best effort: implementations log failures and never
// report them back to the caller.
type BookingNotifier interface {
	BookingCreated(ctx context.Context, b *domain.Booking)
	BookingCancelRequested(ctx context.Context, b *domain.Booking)
	BookingCancelled(ctx context.Context, b *domain.Booking)
	ApplicationSubmitted(ctx context.Context, a *domain.Application)
}
