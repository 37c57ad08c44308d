package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports"
)

type TourService struct {
	repo ports.TourRepo
	loc  *time.Location
	now  func() time.Time
}

func NewTourService(repo ports.TourRepo, loc *time.Location) *TourService {
	if loc == nil {
		loc = time.UTC
	}
	return &TourService{repo: repo, loc: loc, now: utcNow}
}

func (s *TourService) Create(ctx context.Context, input domain.CreateTourInput) (*domain.Tour, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}
	departure := domain.CalendarDate(input.DepartureDate)
	if departure.Before(domain.Today(s.now(), s.loc)) {
		return nil, fmt.Errorf("%w: departure_date must not be in the past", domain.ErrValidation)
	}
	status := input.Status
	if status == "" {
		status = domain.TourStatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown tour status %q", domain.ErrValidation, status)
	}

	now := s.now()
	tour := &domain.Tour{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(input.Title),
		Price:           input.Price,
		DepartureDate:   departure,
		Status:          status,
		MaxParticipants: input.MaxParticipants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	return tour, nil
}

func (s *TourService) UpdateStatus(ctx context.Context, id string, status domain.TourStatus) (*domain.Tour, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown tour status %q", domain.ErrValidation, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update tour status: %w", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *TourService) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TourService) List(ctx context.Context) ([]*domain.Tour, error) {
	return s.repo.List(ctx)
}
