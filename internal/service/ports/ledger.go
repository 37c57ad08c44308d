package ports

import (
	"context"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

type LedgerRepo interface {
	// Post fills BalanceBefore/BalanceAfter, appends the entry and updates the
	// user's cached balance in one critical section per user.
	Post(ctx context.Context, entry *domain.MileageTransaction) error
	Balance(ctx context.Context, userID string) (int64, error)
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.MileageTransaction, int, error)
	// Entries returns every entry of the user in posting order.
	Entries(ctx context.Context, userID string) ([]domain.MileageTransaction, error)
}
