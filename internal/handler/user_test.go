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

func TestHandler_CreateUser_Success(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Name: "Kim", Email: "kim@example.com"}).
		Return(&domain.User{ID: uuid.New().String(), Name: "Kim", Email: "kim@example.com", CreatedAt: time.Now()}, nil)

	w := env.do(t, http.MethodPost, "/api/admin/users", signToken(t, testAdminID, middleware.RoleAdmin),
		dto.CreateUserRequest{Name: "Kim", Email: "kim@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Mileage)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := env.do(t, http.MethodPost, "/api/admin/users", signToken(t, testAdminID, middleware.RoleAdmin),
		dto.CreateUserRequest{Name: "Kim", Email: "kim@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().List(mock.Anything).Return([]*domain.User{
		{ID: "u1", Name: "A", Mileage: 10},
		{ID: "u2", Name: "B"},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/admin/users", signToken(t, testAdminID, middleware.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
