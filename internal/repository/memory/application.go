package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type ApplicationRepo struct {
	s *Store
}

func (r *ApplicationRepo) Create(_ context.Context, a *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[a.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *a
	r.s.applications[a.ID] = &cp
	return nil
}

func (r *ApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.applications[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *ApplicationRepo) List(_ context.Context, filter domain.ApplicationFilter) ([]*domain.Application, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*domain.Application
	for _, a := range r.s.applications {
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		cp := *a
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].RequestDate.Equal(matched[j].RequestDate) {
			return matched[i].RequestDate.After(matched[j].RequestDate)
		}
		return matched[i].ID < matched[j].ID
	})

	return paginate(matched, filter.Page), len(matched), nil
}

func (r *ApplicationRepo) MarkProcessing(_ context.Context, d domain.Decision) (*domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, err := r.s.openApplication(d.ApplicationID)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.ApplicationPending {
		return nil, fmt.Errorf("%w: application is %s", domain.ErrApplicationStatusTransition, a.Status)
	}
	a.Status = domain.ApplicationProcessing
	if d.Notes != "" {
		a.AdminNotes = d.Notes
	}
	cp := *a
	return &cp, nil
}

func (r *ApplicationRepo) Reject(_ context.Context, d domain.Decision) (*domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, err := r.s.openApplication(d.ApplicationID)
	if err != nil {
		return nil, err
	}
	at := d.At
	a.Status = domain.ApplicationRejected
	a.ProcessedDate = &at
	if d.Notes != "" {
		a.AdminNotes = d.Notes
	}
	cp := *a
	return &cp, nil
}

func (r *ApplicationRepo) Approve(_ context.Context, d domain.Decision, entryID string) (*domain.Application, *domain.MileageTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, err := r.s.openApplication(d.ApplicationID)
	if err != nil {
		return nil, nil, err
	}

	ref := a.ID
	entry := &domain.MileageTransaction{
		ID:              entryID,
		UserID:          a.UserID,
		Amount:          a.Amount,
		TransactionType: a.Type.TransactionType(),
		Description:     a.LedgerDescription(),
		ReferenceID:     &ref,
		CreatedAt:       d.At,
	}
	if err = r.s.postEntry(entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateReference) {
			return nil, nil, domain.ErrApplicationAlreadyProcessed
		}
		return nil, nil, err
	}

	at := d.At
	a.Status = domain.ApplicationCompleted
	a.ProcessedDate = &at
	txID := entry.ID
	a.TransactionID = &txID
	if d.Notes != "" {
		a.AdminNotes = d.Notes
	}
	cp := *a
	return &cp, entry, nil
}

func (r *ApplicationRepo) CountByStatus(_ context.Context) (map[domain.ApplicationStatus]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make(map[domain.ApplicationStatus]int)
	for _, a := range r.s.applications {
		res[a.Status]++
	}
	return res, nil
}

// Caller holds mu.
func (s *Store) openApplication(id string) (*domain.Application, error) {
	a, ok := s.applications[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	if !a.Status.Open() {
		return nil, domain.ErrApplicationAlreadyProcessed
	}
	return a, nil
}
