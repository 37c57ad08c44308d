package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
)

type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tours[b.TourID]; !ok {
		return domain.ErrTourNotFound
	}
	if _, taken := r.s.numbers[b.BookingNumber]; taken {
		return domain.ErrDuplicateBookingNumber
	}

	cp := *b
	r.s.bookings[b.ID] = &cp
	r.s.numbers[b.BookingNumber] = b.ID
	r.s.appendEvent(domain.BookingStatusEvent{
		BookingID: b.ID,
		ToStatus:  b.Status,
		Actor:     domain.ActorCustomer,
		Reason:    "booking created",
		CreatedAt: b.CreatedAt,
	})
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *BookingRepo) GetByNumber(ctx context.Context, bookingNumber string) (*domain.Booking, error) {
	r.s.mu.RLock()
	id, ok := r.s.numbers[bookingNumber]
	r.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepo) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*domain.Booking
	for _, b := range r.s.bookings {
		if filter.TourID != "" && b.TourID != filter.TourID {
			continue
		}
		if filter.Status != "" && b.Status.Normalize() != filter.Status.Normalize() {
			continue
		}
		cp := *b
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	return paginate(matched, filter.Page), len(matched), nil
}

func (r *BookingRepo) ApplyStatusChange(_ context.Context, ch domain.StatusChange) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[ch.BookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != ch.From {
		return nil, domain.ErrBookingStatusChanged
	}

	b.Status = ch.To
	b.UpdatedAt = ch.At
	if ch.Reason != "" && (ch.To == domain.BookingStatusCancelRequested || ch.To == domain.BookingStatusCancelled) {
		b.CancelReason = ch.Reason
	}
	r.s.appendEvent(domain.BookingStatusEvent{
		BookingID:  ch.BookingID,
		FromStatus: ch.From,
		ToStatus:   ch.To,
		Actor:      ch.Actor,
		Reason:     ch.Reason,
		CreatedAt:  ch.At,
	})
	if ch.Release {
		r.s.releaseSeats(b.TourID, b.Participants)
	}

	cp := *b
	return &cp, nil
}

func (r *BookingRepo) Delete(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status.HoldsCapacity() {
		r.s.releaseSeats(b.TourID, b.Participants)
	}
	delete(r.s.bookings, id)
	delete(r.s.numbers, b.BookingNumber)
	delete(r.s.events, id)

	return b, nil
}

func (r *BookingRepo) ExpireOverdue(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var expired []*domain.Booking
	for _, b := range r.s.bookings {
		if b.Status.Normalize() != domain.BookingStatusPaymentPending || !b.PaymentDueDate.Before(now) {
			continue
		}
		from := b.Status
		b.Status = domain.BookingStatusPaymentExpired
		b.UpdatedAt = now
		r.s.releaseSeats(b.TourID, b.Participants)
		r.s.appendEvent(domain.BookingStatusEvent{
			BookingID:  b.ID,
			FromStatus: from,
			ToStatus:   domain.BookingStatusPaymentExpired,
			Actor:      domain.ActorScheduler,
			Reason:     "payment deadline passed",
			CreatedAt:  now,
		})
		cp := *b
		expired = append(expired, &cp)
	}

	return expired, nil
}

func (r *BookingRepo) History(_ context.Context, bookingID string) ([]*domain.BookingStatusEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.bookings[bookingID]; !ok {
		return nil, domain.ErrBookingNotFound
	}
	events := r.s.events[bookingID]
	res := make([]*domain.BookingStatusEvent, 0, len(events))
	for i := range events {
		e := events[i]
		res = append(res, &e)
	}
	return res, nil
}

func (r *BookingRepo) CountByStatus(_ context.Context) (map[domain.BookingStatus]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make(map[domain.BookingStatus]int)
	for _, b := range r.s.bookings {
		res[b.Status.Normalize()]++
	}
	return res, nil
}

// Caller holds mu.
func (s *Store) appendEvent(e domain.BookingStatusEvent) {
	e.ID = uuid.New().String()
	s.events[e.BookingID] = append(s.events[e.BookingID], e)
}
