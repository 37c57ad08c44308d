package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today     = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	departure = time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
)

func TestTourRepository_Reserve_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE tours\s+SET current_participants = current_participants \+ \$2`).
		WithArgs("tour-1", 2, "published", today).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "departure_date"}).
			AddRow("tour-1", "Jeju Island 3 days", int64(350000), departure))
	mock.ExpectCommit()

	snap, err := repo.Reserve(context.Background(), "tour-1", 2, today)
	require.NoError(t, err)
	assert.Equal(t, "tour-1", snap.TourID)
	assert.Equal(t, "Jeju Island 3 days", snap.Title)
	assert.Equal(t, int64(350000), snap.Price)
	assert.True(t, departure.Equal(snap.DepartureDate))
}

func TestTourRepository_Reserve_Diagnosis(t *testing.T) {
	tests := []struct {
		name    string
		row     []driver.Value
		wantErr error
	}{
		{
			name:    "not published",
			row:     []driver.Value{"draft", departure, 10, 0},
			wantErr: domain.ErrTourNotPublished,
		},
		{
			name:    "departure passed",
			row:     []driver.Value{"published", today.AddDate(0, 0, -1), 10, 0},
			wantErr: domain.ErrDeparturePassed,
		},
		{
			name:    "not enough seats",
			row:     []driver.Value{"published", departure, 10, 9},
			wantErr: domain.ErrInsufficientCapacity,
		},
		{
			name:    "not found",
			wantErr: domain.ErrTourNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewTourRepo(db)

			mock.ExpectBegin()
			mock.ExpectQuery(`UPDATE tours`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "departure_date"}))

			check := sqlmock.NewRows([]string{"status", "departure_date", "max_participants", "current_participants"})
			if tt.row != nil {
				check.AddRow(tt.row...)
			}
			mock.ExpectQuery(`SELECT status, departure_date, max_participants, current_participants`).
				WithArgs("tour-1").
				WillReturnRows(check)
			mock.ExpectRollback()

			snap, err := repo.Reserve(context.Background(), "tour-1", 2, today)
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTourRepository_Reserve_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepo(db)

	dbErr := errors.New("connection reset")
	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE tours`).WillReturnError(dbErr)
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), "tour-1", 1, today)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestTourRepository_Release(t *testing.T) {
	t.Run("released", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`GREATEST\(current_participants - \$2, 0\)`).
			WithArgs("tour-1", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewTourRepo(db).Release(context.Background(), "tour-1", 3))
	})

	t.Run("unknown tour", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE tours`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewTourRepo(db).Release(context.Background(), "missing", 3)
		assert.ErrorIs(t, err, domain.ErrTourNotFound)
	})
}

func TestTourRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE tours SET status = \$2`).
		WithArgs("missing", "published").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewTourRepo(db).UpdateStatus(context.Background(), "missing", domain.TourStatusPublished)
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestTourRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepo(db)

	cols := []string{"id", "title", "price", "departure_date", "status", "max_participants",
		"current_participants", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT id, title, price`).
		WithArgs("tour-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("tour-1", "Jeju", int64(100000), departure, "published", 20, 5, today, today))
	mock.ExpectQuery(`SELECT id, title, price`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(cols))

	tour, err := repo.GetByID(context.Background(), "tour-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TourStatusPublished, tour.Status)
	assert.Equal(t, 15, tour.AvailableSeats())

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}
