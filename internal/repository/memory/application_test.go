package memory

import (
	"context"
	"testing"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedApplication(t *testing.T, s *Store, id string, typ domain.ApplicationType, amount int64) {
	t.Helper()
	require.NoError(t, s.Applications().Create(context.Background(), &domain.Application{
		ID:          id,
		UserID:      "user-1",
		Type:        typ,
		Amount:      amount,
		Status:      domain.ApplicationPending,
		RequestDate: today,
	}))
}

func TestApplicationRepo_Create_UnknownUser(t *testing.T) {
	s := NewStore()
	err := s.Applications().Create(context.Background(), &domain.Application{ID: "app-1", UserID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestApplicationRepo_Approve(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedUser(t, s, "user-1")
	seedApplication(t, s, "app-1", domain.ApplicationDeposit, 5000)

	processing, err := s.Applications().MarkProcessing(ctx, domain.Decision{ApplicationID: "app-1", Notes: "checking", At: today})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationProcessing, processing.Status)

	// processing cannot go back through MarkProcessing
	_, err = s.Applications().MarkProcessing(ctx, domain.Decision{ApplicationID: "app-1", At: today})
	assert.ErrorIs(t, err, domain.ErrApplicationStatusTransition)

	app, entry, err := s.Applications().Approve(ctx, domain.Decision{ApplicationID: "app-1", At: today}, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationCompleted, app.Status)
	assert.Equal(t, "checking", app.AdminNotes)
	require.NotNil(t, app.TransactionID)
	assert.Equal(t, "tx-1", *app.TransactionID)
	assert.Equal(t, int64(5000), entry.BalanceAfter)
	require.NotNil(t, entry.ReferenceID)
	assert.Equal(t, "app-1", *entry.ReferenceID)

	_, _, err = s.Applications().Approve(ctx, domain.Decision{ApplicationID: "app-1", At: today}, "tx-2")
	assert.ErrorIs(t, err, domain.ErrApplicationAlreadyProcessed)

	balance, err := s.Ledger().Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), balance)
}

func TestApplicationRepo_Approve_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedUser(t, s, "user-1")
	seedApplication(t, s, "app-1", domain.ApplicationWithdrawal, 1000)

	_, _, err := s.Applications().Approve(ctx, domain.Decision{ApplicationID: "app-1", At: today}, "tx-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	app, err := s.Applications().GetByID(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)
	assert.Nil(t, app.TransactionID)
}

func TestApplicationRepo_Reject(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedUser(t, s, "user-1")
	seedApplication(t, s, "app-1", domain.ApplicationWithdrawal, 1000)

	app, err := s.Applications().Reject(ctx, domain.Decision{ApplicationID: "app-1", Notes: "wrong account", At: today})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationRejected, app.Status)
	require.NotNil(t, app.ProcessedDate)

	_, err = s.Applications().Reject(ctx, domain.Decision{ApplicationID: "app-1", At: today})
	assert.ErrorIs(t, err, domain.ErrApplicationAlreadyProcessed)
	_, _, err = s.Applications().Approve(ctx, domain.Decision{ApplicationID: "app-1", At: today}, "tx-1")
	assert.ErrorIs(t, err, domain.ErrApplicationAlreadyProcessed)
	_, err = s.Applications().Reject(ctx, domain.Decision{ApplicationID: "missing", At: today})
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)

	counts, err := s.Applications().CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.ApplicationRejected])
}

func TestUserRepo_Create_EmailTaken(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedUser(t, s, "user-1")

	err := s.Users().Create(ctx, &domain.User{ID: "user-2", Email: "USER-1@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	users, err := s.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
