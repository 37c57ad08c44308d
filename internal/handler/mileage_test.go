package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler/dto"
	"github.com/stpnv0/TravelDesk/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_MyBalance_UsesTokenSubject(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.ledger.EXPECT().BalanceOf(mock.Anything, userID).Return(int64(5000), nil)

	w := env.do(t, http.MethodGet, "/api/me/mileage", signToken(t, userID, ""), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, int64(5000), resp.Balance)
}

func TestHandler_MyBalance_Unauthenticated(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/me/mileage", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MyTransactions_Filters(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	env.ledger.EXPECT().
		ListTransactions(mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.UserID == userID &&
				len(f.Types) == 2 &&
				f.Types[0] == domain.TransactionDeposit &&
				f.Types[1] == domain.TransactionReward &&
				f.From != nil && f.From.Equal(from) &&
				f.To == nil
		})).
		Return(domain.NewPageResult([]*domain.MileageTransaction{
			{ID: "m1", UserID: userID, Amount: 5000, TransactionType: domain.TransactionDeposit, BalanceAfter: 5000},
		}, 1, domain.Page{}), nil)

	w := env.do(t, http.MethodGet, "/api/me/mileage/transactions?type=deposit,reward&from=2026-01-01",
		signToken(t, userID, ""), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.PageResponse[dto.MileageTransactionResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "deposit", resp.Items[0].TransactionType)
	assert.Equal(t, domain.DefaultPageSize, resp.PageSize)
}

func TestHandler_MyTransactions_BadTime(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/me/mileage/transactions?to=yesterday", signToken(t, uuid.New().String(), ""), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PostMileage_InsufficientBalance(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.ledger.EXPECT().
		Post(mock.Anything, domain.PostInput{UserID: userID, Type: domain.TransactionUsage, Amount: 6000}).
		Return(nil, domain.ErrInsufficientBalance)

	w := env.do(t, http.MethodPost, "/api/admin/mileage", signToken(t, testAdminID, middleware.RoleAdmin),
		dto.PostMileageRequest{UserID: userID, Type: "usage", Amount: 6000})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PostMileage_Success(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	ref := "promo-2026"
	env.ledger.EXPECT().
		Post(mock.Anything, domain.PostInput{
			UserID: userID, Type: domain.TransactionReward, Amount: 300, Description: "welcome", ReferenceID: &ref,
		}).
		Return(&domain.MileageTransaction{
			ID: "m1", UserID: userID, Amount: 300, TransactionType: domain.TransactionReward,
			BalanceBefore: 0, BalanceAfter: 300, ReferenceID: &ref,
		}, nil)

	w := env.do(t, http.MethodPost, "/api/admin/mileage", signToken(t, testAdminID, middleware.RoleAdmin),
		dto.PostMileageRequest{UserID: userID, Type: "reward", Amount: 300, Description: "welcome", ReferenceID: &ref})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.MileageTransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(300), resp.BalanceAfter)
}

func TestHandler_ReconcileUser(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.ledger.EXPECT().Reconcile(mock.Anything, userID).Return(&domain.ReconcileReport{
		UserID: userID, Cached: 1000, Replayed: 1000, Entries: 2, Consistent: true,
	}, nil)

	w := env.do(t, http.MethodGet, "/api/admin/users/"+userID+"/mileage/reconcile",
		signToken(t, testAdminID, middleware.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.ReconcileReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Consistent)
}
