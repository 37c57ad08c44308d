package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports"
)

// SummaryService serves the admin console counters straight from storage.
type SummaryService struct {
	bookings     ports.BookingRepo
	applications ports.ApplicationRepo
}

func NewSummaryService(bookings ports.BookingRepo, applications ports.ApplicationRepo) *SummaryService {
	return &SummaryService{bookings: bookings, applications: applications}
}

func (s *SummaryService) Summary(ctx context.Context) (*domain.Summary, error) {
	bookings, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	applications, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	return &domain.Summary{Bookings: bookings, Applications: applications}, nil
}
