package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type TourRepository struct {
	db       DB
	strategy retry.Strategy
}

func NewTourRepo(db DB) *TourRepository {
	return &TourRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const tourColumns = `id, title, price, departure_date, status, max_participants,
	current_participants, created_at, updated_at`

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	query := `INSERT INTO tours (id, title, price, departure_date, status, max_participants,
				current_participants, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Title, t.Price, t.DepartureDate, t.Status,
		t.MaxParticipants, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tour: %w", err)
	}

	return nil
}

func (r *TourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}

	t, err := scanTour(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("scan tour: %w", err)
	}

	return t, nil
}

func (r *TourRepository) List(ctx context.Context) ([]*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours ORDER BY departure_date, title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var res []*domain.Tour
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tour: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TourRepository) UpdateStatus(ctx context.Context, id string, status domain.TourStatus) error {
	query := `UPDATE tours SET status = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update tour status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tour rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrTourNotFound
	}

	return nil
}

// Reserve is a single guarded increment: the capacity check and the write
// happen in one statement, so concurrent reservations cannot oversell.
func (r *TourRepository) Reserve(ctx context.Context, tourID string, participants int, today time.Time) (*domain.TourSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tours
			  SET current_participants = current_participants + $2, updated_at = now()
			  WHERE id = $1
			    AND status = $3
			    AND departure_date >= $4
			    AND max_participants - current_participants >= $2
			  RETURNING id, title, price, departure_date`

	var snap domain.TourSnapshot
	err = tx.QueryRowContext(ctx, query, tourID, participants, domain.TourStatusPublished, today).
		Scan(&snap.TourID, &snap.Title, &snap.Price, &snap.DepartureDate)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reserve seats: %w", err)
		}
		return nil, r.diagnoseReserve(ctx, tx, tourID, participants, today)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reserve: %w", err)
	}

	return &snap, nil
}

// diagnoseReserve explains why the guarded update matched no row.
func (r *TourRepository) diagnoseReserve(ctx context.Context, tx *sql.Tx, tourID string, participants int, today time.Time) error {
	var (
		status    domain.TourStatus
		departure time.Time
		maxSeats  int
		taken     int
	)
	checkQuery := `SELECT status, departure_date, max_participants, current_participants
				   FROM tours WHERE id = $1`
	err := tx.QueryRowContext(ctx, checkQuery, tourID).Scan(&status, &departure, &maxSeats, &taken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTourNotFound
		}
		return fmt.Errorf("diagnose reserve: %w", err)
	}

	switch {
	case status != domain.TourStatusPublished:
		return domain.ErrTourNotPublished
	case domain.CalendarDate(departure).Before(domain.CalendarDate(today)):
		return domain.ErrDeparturePassed
	case maxSeats-taken < participants:
		return fmt.Errorf("%w: %d seats left, %d requested", domain.ErrInsufficientCapacity, maxSeats-taken, participants)
	}

	// The row changed between the update and this read; report it as a capacity conflict.
	return domain.ErrInsufficientCapacity
}

func (r *TourRepository) Release(ctx context.Context, tourID string, participants int) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, releaseSeatsQuery, tourID, participants)
	if err != nil {
		return fmt.Errorf("release seats: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tour rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrTourNotFound
	}

	return nil
}

const releaseSeatsQuery = `UPDATE tours
	SET current_participants = GREATEST(current_participants - $2, 0), updated_at = now()
	WHERE id = $1`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTour(s rowScanner) (*domain.Tour, error) {
	var t domain.Tour
	if err := s.Scan(
		&t.ID, &t.Title, &t.Price, &t.DepartureDate, &t.Status, &t.MaxParticipants,
		&t.CurrentParticipants, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
