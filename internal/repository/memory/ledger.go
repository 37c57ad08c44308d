package memory

import (
	"context"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type LedgerRepo struct {
	s *Store
}

func (r *LedgerRepo) Post(_ context.Context, entry *domain.MileageTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.postEntry(entry)
}

// Caller holds mu.
func (s *Store) postEntry(entry *domain.MileageTransaction) error {
	u, ok := s.users[entry.UserID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if entry.ReferenceID != nil {
		if _, dup := s.references[*entry.ReferenceID]; dup {
			return domain.ErrDuplicateReference
		}
	}

	after, err := domain.ApplyTransaction(u.Mileage, entry.TransactionType, entry.Amount)
	if err != nil {
		return err
	}
	entry.BalanceBefore = u.Mileage
	entry.BalanceAfter = after

	s.ledger[entry.UserID] = append(s.ledger[entry.UserID], *entry)
	if entry.ReferenceID != nil {
		s.references[*entry.ReferenceID] = entry.ID
	}
	u.Mileage = after
	return nil
}

func (r *LedgerRepo) Balance(_ context.Context, userID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	return u.Mileage, nil
}

func (r *LedgerRepo) List(_ context.Context, filter domain.TransactionFilter) ([]*domain.MileageTransaction, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.ledger[filter.UserID]
	var matched []*domain.MileageTransaction
	// newest first
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !matchesTypes(e.TransactionType, filter.Types) {
			continue
		}
		if filter.From != nil && e.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !e.CreatedAt.Before(*filter.To) {
			continue
		}
		matched = append(matched, &e)
	}

	return paginate(matched, filter.Page), len(matched), nil
}

func (r *LedgerRepo) Entries(_ context.Context, userID string) ([]domain.MileageTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.ledger[userID]
	res := make([]domain.MileageTransaction, len(entries))
	copy(res, entries)
	return res, nil
}

func matchesTypes(t domain.TransactionType, types []domain.TransactionType) bool {
	if len(types) == 0 {
		return true
	}
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}
