package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports"
)

// CapacityLedger owns the seat counters of tours. Nothing else writes
// current_participants.
type CapacityLedger struct {
	tours ports.TourRepo
	loc   *time.Location
	now   func() time.Time
}

func NewCapacityLedger(tours ports.TourRepo, loc *time.Location) *CapacityLedger {
	if loc == nil {
		loc = time.UTC
	}
	return &CapacityLedger{tours: tours, loc: loc, now: utcNow}
}

func (c *CapacityLedger) Reserve(ctx context.Context, tourID string, participants int) (*domain.TourSnapshot, error) {
	if participants < 1 {
		return nil, fmt.Errorf("%w: participants must be at least 1", domain.ErrValidation)
	}
	return c.tours.Reserve(ctx, tourID, participants, domain.Today(c.now(), c.loc))
}

func (c *CapacityLedger) Release(ctx context.Context, tourID string, participants int) error {
	if participants < 1 {
		return fmt.Errorf("%w: participants must be at least 1", domain.ErrValidation)
	}
	return c.tours.Release(ctx, tourID, participants)
}
