package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LedgerService is the only writer of mileage balances.
type LedgerService struct {
	repo   ports.LedgerRepo
	logger logger.Logger
	now    func() time.Time
}

func NewLedgerService(repo ports.LedgerRepo, logger logger.Logger) *LedgerService {
	return &LedgerService{repo: repo, logger: logger, now: utcNow}
}

func (s *LedgerService) Post(ctx context.Context, input domain.PostInput) (*domain.MileageTransaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.MileageTransaction{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		Amount:          input.Amount,
		TransactionType: input.Type,
		Description:     input.Description,
		ReferenceID:     input.ReferenceID,
		CreatedAt:       s.now(),
	}
	if err := s.repo.Post(ctx, entry); err != nil {
		return nil, fmt.Errorf("post mileage: %w", err)
	}

	s.logger.Info("mileage posted",
		logger.String("transaction_id", entry.ID),
		logger.String("user_id", entry.UserID),
		logger.String("type", string(entry.TransactionType)),
		logger.Int64("amount", entry.Amount),
		logger.Int64("balance_after", entry.BalanceAfter),
	)

	return entry, nil
}

func (s *LedgerService) BalanceOf(ctx context.Context, userID string) (int64, error) {
	return s.repo.Balance(ctx, userID)
}

func (s *LedgerService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.PageResult[*domain.MileageTransaction], error) {
	if filter.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	for _, t := range filter.Types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, t)
		}
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, fmt.Errorf("%w: from must be before to", domain.ErrValidation)
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list mileage transactions: %w", err)
	}
	return domain.NewPageResult(items, total, filter.Page), nil
}

// Reconcile replays the user's ledger from zero and compares the result with
// the cached balance.
func (s *LedgerService) Reconcile(ctx context.Context, userID string) (*domain.ReconcileReport, error) {
	cached, err := s.repo.Balance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	entries, err := s.repo.Entries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	report := &domain.ReconcileReport{
		UserID:  userID,
		Cached:  cached,
		Entries: len(entries),
	}
	replayed, err := domain.Replay(entries)
	report.Replayed = replayed
	switch {
	case err != nil:
		report.Problem = err.Error()
	case replayed != cached:
		report.Problem = fmt.Sprintf("cached balance %d, replayed %d", cached, replayed)
	default:
		report.Consistent = true
	}

	if !report.Consistent {
		s.logger.Warn("mileage ledger inconsistent",
			logger.String("user_id", userID),
			logger.String("problem", report.Problem),
		)
	}

	return report, nil
}
