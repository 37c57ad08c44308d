package ports

import (
	"context"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.Application, int, error)
	MarkProcessing(ctx context.Context, d domain.Decision) (*domain.Application, error)
	Reject(ctx context.Context, d domain.Decision) (*domain.Application, error)
	// Approve posts the ledger entry and completes the application in one
	// transaction; an already completed application is never posted twice.
	Approve(ctx context.Context, d domain.Decision, entryID string) (*domain.Application, *domain.MileageTransaction, error)
	CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int, error)
}
