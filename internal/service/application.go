package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ApplicationService struct {
	repo     ports.ApplicationRepo
	userRepo ports.UserRepo
	notifier ports.BookingNotifier
	logger   logger.Logger
	now      func() time.Time
}

func NewApplicationService(
	repo ports.ApplicationRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *ApplicationService {
	return &ApplicationService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
		now:      utcNow,
	}
}

func (s *ApplicationService) Submit(ctx context.Context, input domain.SubmitApplicationInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	// Approval checks again under the row lock; this only turns away
	// requests that could never be approved.
	if input.Type == domain.ApplicationWithdrawal && input.Amount > user.Mileage {
		return nil, domain.ErrInsufficientBalance
	}

	app := &domain.Application{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		Type:        input.Type,
		Amount:      input.Amount,
		Status:      domain.ApplicationPending,
		RequestDate: s.now(),
	}
	if input.Type == domain.ApplicationWithdrawal {
		app.Bank = domain.BankDetails{
			BankName:      strings.TrimSpace(input.Bank.BankName),
			AccountNumber: strings.TrimSpace(input.Bank.AccountNumber),
			AccountHolder: strings.TrimSpace(input.Bank.AccountHolder),
		}
	}

	if err = s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.logger.Info("application submitted",
		logger.String("application_id", app.ID),
		logger.String("user_id", app.UserID),
		logger.String("type", string(app.Type)),
		logger.Int64("amount", app.Amount),
	)

	go s.notifier.ApplicationSubmitted(context.WithoutCancel(ctx), app)

	return app, nil
}

func (s *ApplicationService) MarkProcessing(ctx context.Context, id, notes string) (*domain.Application, error) {
	app, err := s.repo.MarkProcessing(ctx, s.decision(id, notes))
	if err != nil {
		return nil, fmt.Errorf("mark processing: %w", err)
	}

	s.logger.Info("application processing", logger.String("application_id", id))
	return app, nil
}

// Approve posts the ledger entry and completes the application atomically.
// A second approval of the same application fails with a conflict.
func (s *ApplicationService) Approve(ctx context.Context, id, notes string) (*domain.Application, *domain.MileageTransaction, error) {
	app, entry, err := s.repo.Approve(ctx, s.decision(id, notes), uuid.New().String())
	if err != nil {
		return nil, nil, fmt.Errorf("approve application: %w", err)
	}

	s.logger.Info("application approved",
		logger.String("application_id", app.ID),
		logger.String("transaction_id", entry.ID),
		logger.Int64("balance_after", entry.BalanceAfter),
	)

	return app, entry, nil
}

func (s *ApplicationService) Reject(ctx context.Context, id, notes string) (*domain.Application, error) {
	app, err := s.repo.Reject(ctx, s.decision(id, notes))
	if err != nil {
		return nil, fmt.Errorf("reject application: %w", err)
	}

	s.logger.Info("application rejected", logger.String("application_id", id))
	return app, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ApplicationService) List(ctx context.Context, filter domain.ApplicationFilter) (*domain.PageResult[*domain.Application], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown application status %q", domain.ErrValidation, filter.Status)
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown application type %q", domain.ErrValidation, filter.Type)
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return domain.NewPageResult(items, total, filter.Page), nil
}

func (s *ApplicationService) decision(id, notes string) domain.Decision {
	return domain.Decision{ApplicationID: id, Notes: strings.TrimSpace(notes), At: s.now()}
}
