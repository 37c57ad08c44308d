// Package memory keeps every repository in process memory behind one lock.
// Each method is a single critical section, which gives it the same
// atomicity as the Postgres transaction it stands in for.
package memory

import (
	"sync"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	tours        map[string]*domain.Tour
	bookings     map[string]*domain.Booking
	numbers      map[string]string // booking number -> booking id
	events       map[string][]domain.BookingStatusEvent
	users        map[string]*domain.User
	emails       map[string]string // email -> user id
	ledger       map[string][]domain.MileageTransaction
	references   map[string]string // reference id -> entry id
	applications map[string]*domain.Application
}

func NewStore() *Store {
	return &Store{
		tours:        make(map[string]*domain.Tour),
		bookings:     make(map[string]*domain.Booking),
		numbers:      make(map[string]string),
		events:       make(map[string][]domain.BookingStatusEvent),
		users:        make(map[string]*domain.User),
		emails:       make(map[string]string),
		ledger:       make(map[string][]domain.MileageTransaction),
		references:   make(map[string]string),
		applications: make(map[string]*domain.Application),
	}
}

func (s *Store) Tours() *TourRepo               { return &TourRepo{s: s} }
func (s *Store) Bookings() *BookingRepo         { return &BookingRepo{s: s} }
func (s *Store) Users() *UserRepo               { return &UserRepo{s: s} }
func (s *Store) Ledger() *LedgerRepo            { return &LedgerRepo{s: s} }
func (s *Store) Applications() *ApplicationRepo { return &ApplicationRepo{s: s} }

// Caller holds mu.
func (s *Store) releaseSeats(tourID string, participants int) bool {
	t, ok := s.tours[tourID]
	if !ok {
		return false
	}
	t.CurrentParticipants -= participants
	if t.CurrentParticipants < 0 {
		t.CurrentParticipants = 0
	}
	return true
}

func paginate[T any](items []T, p domain.Page) []T {
	return paginateFrom(items, p.Offset(), p.Limit())
}

func paginateFrom[T any](items []T, off, limit int) []T {
	if off < 0 || off >= len(items) {
		return nil
	}
	end := off + limit
	if end > len(items) || end < off {
		end = len(items)
	}
	return items[off:end]
}
