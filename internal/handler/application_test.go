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

func TestHandler_SubmitApplication_Withdrawal(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.applications.EXPECT().
		Submit(mock.Anything, domain.SubmitApplicationInput{
			UserID: userID,
			Type:   domain.ApplicationWithdrawal,
			Amount: 2000,
			Bank:   &domain.BankDetails{BankName: "KB", AccountNumber: "123-45", AccountHolder: "Kim"},
		}).
		Return(&domain.Application{
			ID: uuid.New().String(), UserID: userID, Type: domain.ApplicationWithdrawal,
			Amount: 2000, Status: domain.ApplicationPending, RequestDate: time.Now(),
		}, nil)

	w := env.do(t, http.MethodPost, "/api/me/applications", signToken(t, userID, ""), dto.SubmitApplicationRequest{
		Type: "withdrawal", Amount: 2000, BankName: "KB", AccountNumber: "123-45", AccountHolder: "Kim",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_SubmitApplication_DepositWithoutBank(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.applications.EXPECT().
		Submit(mock.Anything, domain.SubmitApplicationInput{UserID: userID, Type: domain.ApplicationDeposit, Amount: 500}).
		Return(&domain.Application{ID: "a1", UserID: userID, Type: domain.ApplicationDeposit, Amount: 500}, nil)

	w := env.do(t, http.MethodPost, "/api/me/applications", signToken(t, userID, ""),
		dto.SubmitApplicationRequest{Type: "deposit", Amount: 500})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_MyApplications_ScopedToCaller(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.applications.EXPECT().
		List(mock.Anything, domain.ApplicationFilter{UserID: userID, Status: domain.ApplicationPending}).
		Return(domain.NewPageResult[*domain.Application](nil, 0, domain.Page{}), nil)

	// user_id in the query is ignored on /me routes
	w := env.do(t, http.MethodGet, "/api/me/applications?status=pending&user_id=someone-else", signToken(t, userID, ""), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.PageResponse[dto.ApplicationResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestHandler_ApproveApplication_Success(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	txID := uuid.New().String()
	processed := time.Now()
	env.applications.EXPECT().Approve(mock.Anything, id, "verified").Return(
		&domain.Application{ID: id, Status: domain.ApplicationCompleted, ProcessedDate: &processed, TransactionID: &txID},
		&domain.MileageTransaction{ID: txID, Amount: 5000, TransactionType: domain.TransactionDeposit, BalanceAfter: 5000},
		nil,
	)

	w := env.do(t, http.MethodPost, "/api/admin/applications/"+id+"/approve", signToken(t, testAdminID, middleware.RoleAdmin),
		dto.DecisionRequest{Notes: "verified"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ApproveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Application.Status)
	require.NotNil(t, resp.Application.TransactionID)
	assert.Equal(t, txID, *resp.Application.TransactionID)
	assert.Equal(t, int64(5000), resp.Transaction.BalanceAfter)
}

func TestHandler_ApproveApplication_AlreadyProcessed(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.applications.EXPECT().Approve(mock.Anything, id, "").Return(nil, nil, domain.ErrApplicationAlreadyProcessed)

	w := env.do(t, http.MethodPost, "/api/admin/applications/"+id+"/approve", signToken(t, testAdminID, middleware.RoleAdmin), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectApplication(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.applications.EXPECT().Reject(mock.Anything, id, "wrong account").
		Return(&domain.Application{ID: id, Status: domain.ApplicationRejected, AdminNotes: "wrong account"}, nil)

	w := env.do(t, http.MethodPost, "/api/admin/applications/"+id+"/reject", signToken(t, testAdminID, middleware.RoleAdmin),
		dto.DecisionRequest{Notes: "wrong account"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MarkApplicationProcessing_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/admin/applications/abc/processing", signToken(t, testAdminID, middleware.RoleAdmin), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
