package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type TourRepo interface {
	Create(ctx context.Context, t *domain.Tour) error
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	List(ctx context.Context) ([]*domain.Tour, error)
	UpdateStatus(ctx context.Context, id string, status domain.TourStatus) error
	// Reserve atomically checks the tour and adds participants to its
	// current headcount. today is the caller's calendar date.
	Reserve(ctx context.Context, tourID string, participants int, today time.Time) (*domain.TourSnapshot, error)
	Release(ctx context.Context, tourID string, participants int) error
}
