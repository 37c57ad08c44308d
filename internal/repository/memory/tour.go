package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type TourRepo struct {
	s *Store
}

func (r *TourRepo) Create(_ context.Context, t *domain.Tour) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *t
	cp.CurrentParticipants = 0
	r.s.tours[t.ID] = &cp
	return nil
}

func (r *TourRepo) GetByID(_ context.Context, id string) (*domain.Tour, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tours[id]
	if !ok {
		return nil, domain.ErrTourNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TourRepo) List(_ context.Context) ([]*domain.Tour, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Tour, 0, len(r.s.tours))
	for _, t := range r.s.tours {
		cp := *t
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].DepartureDate.Equal(res[j].DepartureDate) {
			return res[i].DepartureDate.Before(res[j].DepartureDate)
		}
		return res[i].Title < res[j].Title
	})
	return res, nil
}

func (r *TourRepo) UpdateStatus(_ context.Context, id string, status domain.TourStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tours[id]
	if !ok {
		return domain.ErrTourNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *TourRepo) Reserve(_ context.Context, tourID string, participants int, today time.Time) (*domain.TourSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tours[tourID]
	switch {
	case !ok:
		return nil, domain.ErrTourNotFound
	case t.Status != domain.TourStatusPublished:
		return nil, domain.ErrTourNotPublished
	case domain.CalendarDate(t.DepartureDate).Before(domain.CalendarDate(today)):
		return nil, domain.ErrDeparturePassed
	case t.AvailableSeats() < participants:
		return nil, fmt.Errorf("%w: %d seats left, %d requested",
			domain.ErrInsufficientCapacity, t.AvailableSeats(), participants)
	}

	t.CurrentParticipants += participants
	t.UpdatedAt = time.Now().UTC()
	return &domain.TourSnapshot{
		TourID:        t.ID,
		Title:         t.Title,
		Price:         t.Price,
		DepartureDate: t.DepartureDate,
	}, nil
}

func (r *TourRepo) Release(_ context.Context, tourID string, participants int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.releaseSeats(tourID, participants) {
		return domain.ErrTourNotFound
	}
	return nil
}
