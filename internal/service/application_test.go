package service

import (
	"context"
	"testing"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationMocks struct {
	repo     *mocks.MockApplicationRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockBookingNotifier
}

func newApplicationService(t *testing.T) (*ApplicationService, applicationMocks) {
	t.Helper()
	m := applicationMocks{
		repo:     mocks.NewMockApplicationRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewApplicationService(m.repo, m.users, m.notifier, newTestLogger(t))
	svc.now = fixedClock
	return svc, m
}

var testBank = &domain.BankDetails{BankName: "KB", AccountNumber: "123-456", AccountHolder: "Kim"}

func TestApplicationService_Submit_Withdrawal(t *testing.T) {
	svc, m := newApplicationService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Mileage: 5000}, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
		return a.Status == domain.ApplicationPending && a.Bank.BankName == "KB" && a.RequestDate.Equal(fixedAt)
	})).Return(nil)

	notified := make(chan struct{})
	m.notifier.EXPECT().ApplicationSubmitted(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Application) { close(notified) }).Return()

	app, err := svc.Submit(context.Background(), domain.SubmitApplicationInput{
		UserID: "u1", Type: domain.ApplicationWithdrawal, Amount: 5000, Bank: testBank,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationWithdrawal, app.Type)
	waitCalled(t, notified)
}

func TestApplicationService_Submit_WithdrawalOverBalance(t *testing.T) {
	svc, m := newApplicationService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Mileage: 4999}, nil)

	_, err := svc.Submit(context.Background(), domain.SubmitApplicationInput{
		UserID: "u1", Type: domain.ApplicationWithdrawal, Amount: 5000, Bank: testBank,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestApplicationService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.SubmitApplicationInput
	}{
		{"withdrawal without bank", domain.SubmitApplicationInput{UserID: "u1", Type: domain.ApplicationWithdrawal, Amount: 10}},
		{"withdrawal blank holder", domain.SubmitApplicationInput{
			UserID: "u1", Type: domain.ApplicationWithdrawal, Amount: 10,
			Bank: &domain.BankDetails{BankName: "KB", AccountNumber: "1", AccountHolder: " "},
		}},
		{"zero amount", domain.SubmitApplicationInput{UserID: "u1", Type: domain.ApplicationDeposit}},
		{"unknown type", domain.SubmitApplicationInput{UserID: "u1", Type: "transfer", Amount: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newApplicationService(t)

			_, err := svc.Submit(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestApplicationService_Submit_UnknownUser(t *testing.T) {
	svc, m := newApplicationService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u404").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Submit(context.Background(), domain.SubmitApplicationInput{
		UserID: "u404", Type: domain.ApplicationDeposit, Amount: 100,
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestApplicationService_Approve(t *testing.T) {
	svc, m := newApplicationService(t)

	m.repo.EXPECT().
		Approve(mock.Anything, domain.Decision{ApplicationID: "a1", Notes: "ok", At: fixedAt}, mock.AnythingOfType("string")).
		Return(
			&domain.Application{ID: "a1", Status: domain.ApplicationCompleted},
			&domain.MileageTransaction{ID: "m1", BalanceAfter: 5000},
			nil,
		)

	app, entry, err := svc.Approve(context.Background(), "a1", "ok")

	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationCompleted, app.Status)
	assert.Equal(t, int64(5000), entry.BalanceAfter)
}

func TestApplicationService_Approve_AlreadyProcessed(t *testing.T) {
	svc, m := newApplicationService(t)

	m.repo.EXPECT().Approve(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, domain.ErrApplicationAlreadyProcessed)

	_, _, err := svc.Approve(context.Background(), "a1", "")

	assert.ErrorIs(t, err, domain.ErrApplicationAlreadyProcessed)
}

func TestApplicationService_Reject(t *testing.T) {
	svc, m := newApplicationService(t)

	m.repo.EXPECT().Reject(mock.Anything, domain.Decision{ApplicationID: "a1", Notes: "no", At: fixedAt}).
		Return(&domain.Application{ID: "a1", Status: domain.ApplicationRejected}, nil)

	app, err := svc.Reject(context.Background(), "a1", "no")

	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationRejected, app.Status)
}

func TestApplicationService_List_Validation(t *testing.T) {
	svc, _ := newApplicationService(t)

	_, err := svc.List(context.Background(), domain.ApplicationFilter{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.List(context.Background(), domain.ApplicationFilter{Type: "transfer"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
