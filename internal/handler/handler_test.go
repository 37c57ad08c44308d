package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler/dto"
	hmocks "github.com/stpnv0/TravelDesk/internal/handler/mocks"
	"github.com/stpnv0/TravelDesk/internal/middleware"
	"github.com/stpnv0/TravelDesk/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "handler-test-secret-0123456789"
	testAdminID = "0b8f4c1e-6a2d-4e7f-9a31-5c2d8e7f1a04"
)

type testEnv struct {
	tours        *hmocks.MockTourSvc
	bookings     *hmocks.MockBookingSvc
	users        *hmocks.MockUserSvc
	ledger       *hmocks.MockLedgerSvc
	applications *hmocks.MockApplicationSvc
	summary      *hmocks.MockSummarySvc
	router       http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		tours:        hmocks.NewMockTourSvc(t),
		bookings:     hmocks.NewMockBookingSvc(t),
		users:        hmocks.NewMockUserSvc(t),
		ledger:       hmocks.NewMockLedgerSvc(t),
		applications: hmocks.NewMockApplicationSvc(t),
		summary:      hmocks.NewMockSummarySvc(t),
	}

	h := NewHandler(env.tours, env.bookings, env.users, env.ledger, env.applications, env.summary)
	env.router = router.InitRouter("test", h,
		middleware.Auth(testSecret, ""),
		middleware.RequireAdmin(),
	)

	return env
}

func signToken(t *testing.T, sub, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

// do sends a request; token may be empty for public routes.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrTourNotFound, http.StatusNotFound, "not_found"},
		{fmt.Errorf("reserve seats: %w", domain.ErrInsufficientCapacity), http.StatusConflict, "conflict"},
		{domain.ErrCancelWindowClosed, http.StatusConflict, "conflict"},
		{domain.ErrInvalidAmount, http.StatusBadRequest, "validation_error"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			env := setupRouter(t)
			env.tours.EXPECT().List(mock.Anything).Return(nil, tt.err)

			w := env.do(t, http.MethodGet, "/api/tours", "", nil)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.code, resp.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", resp.Error)
			}
		})
	}
}

func TestHandler_Admin_RequiresToken(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/admin/summary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/summary", signToken(t, uuid.New().String(), "customer"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Me_RejectsNonUUIDSubject(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/me/mileage", signToken(t, "not-a-uuid", ""), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decodeError(t, w).Code)
}

func TestHandler_Summary_Success(t *testing.T) {
	env := setupRouter(t)

	env.summary.EXPECT().Summary(mock.Anything).Return(&domain.Summary{
		Bookings:     map[domain.BookingStatus]int{domain.BookingStatusPaymentPending: 3},
		Applications: map[domain.ApplicationStatus]int{domain.ApplicationPending: 1},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/admin/summary", signToken(t, testAdminID, middleware.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Bookings[domain.BookingStatusPaymentPending])
	assert.Equal(t, 1, resp.Applications[domain.ApplicationPending])
}

func TestHandler_Health(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
