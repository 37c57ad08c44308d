package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       DB
	strategy retry.Strategy
}

func NewBookingRepo(db DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const bookingColumns = `id, booking_number, tour_id, tour_title, customer_name, phone, email,
	participants, special_requests, status, departure_date, total_amount,
	payment_due_date, cancel_reason, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.BookingNumber, b.TourID, b.TourTitle, b.CustomerName, b.Phone, b.Email,
		b.Participants, b.SpecialRequests, b.Status, b.DepartureDate, b.TotalAmount,
		b.PaymentDueDate, b.CancelReason, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return domain.ErrDuplicateBookingNumber
		case pgForeignKeyViolation:
			return domain.ErrTourNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = insertStatusEvent(ctx, tx, &domain.BookingStatusEvent{
		BookingID: b.ID,
		ToStatus:  b.Status,
		Actor:     domain.ActorCustomer,
		Reason:    "booking created",
		CreatedAt: b.CreatedAt,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) GetByNumber(ctx context.Context, bookingNumber string) (*domain.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_number = $1`, bookingNumber)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, arg any) (*domain.Booking, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int, error) {
	statuses := []string{}
	if filter.Status != "" {
		statuses = append(statuses, string(filter.Status))
		if filter.Status.Normalize() == domain.BookingStatusPaymentPending {
			statuses = []string{string(domain.BookingStatusPaymentPending), string(domain.BookingStatusPending)}
		}
	}

	where := `WHERE ($1 = '' OR tour_id::text = $1)
			    AND (cardinality($2::text[]) = 0 OR status = ANY($2))`

	var total int
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*) FROM bookings `+where, filter.TourID, pq.Array(statuses))
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan booking count: %w", err)
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings ` + where + `
			  ORDER BY created_at DESC, id
			  LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		filter.TourID, pq.Array(statuses), filter.Page.Limit(), filter.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, total, rows.Err()
}

// ApplyStatusChange runs the guarded update, the audit insert and the seat
// release in one transaction.
func (r *BookingRepository) ApplyStatusChange(ctx context.Context, ch domain.StatusChange) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var cancelReason string
	if ch.To == domain.BookingStatusCancelRequested || ch.To == domain.BookingStatusCancelled {
		cancelReason = ch.Reason
	}

	query := `UPDATE bookings
			  SET status = $3,
			      cancel_reason = COALESCE(NULLIF($4, ''), cancel_reason),
			      updated_at = $5
			  WHERE id = $1 AND status = $2
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, query, ch.BookingID, ch.From, ch.To, cancelReason, ch.At))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update booking status: %w", err)
		}
		var exists bool
		if err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, ch.BookingID,
		).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check booking: %w", err)
		}
		if !exists {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.ErrBookingStatusChanged
	}

	if err = insertStatusEvent(ctx, tx, &domain.BookingStatusEvent{
		BookingID:  ch.BookingID,
		FromStatus: ch.From,
		ToStatus:   ch.To,
		Actor:      ch.Actor,
		Reason:     ch.Reason,
		CreatedAt:  ch.At,
	}); err != nil {
		return nil, err
	}

	if ch.Release {
		if _, err = tx.ExecContext(ctx, releaseSeatsQuery, b.TourID, b.Participants); err != nil {
			return nil, fmt.Errorf("release seats: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit status change: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	// Seats go back before the row disappears.
	if b.Status.HoldsCapacity() {
		if _, err = tx.ExecContext(ctx, releaseSeatsQuery, b.TourID, b.Participants); err != nil {
			return nil, fmt.Errorf("release seats: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete: %w", err)
	}

	return b, nil
}

// ExpireOverdue moves every awaiting-payment booking past its deadline to
// payment_expired, gives the seats back and records the events in a single
// statement.
func (r *BookingRepository) ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `
		WITH due AS (
			SELECT id, status AS from_status
			FROM bookings
			WHERE status = ANY($2) AND payment_due_date < $3
			FOR UPDATE SKIP LOCKED
		), expired AS (
			UPDATE bookings b
			SET status = $1, updated_at = $3
			FROM due
			WHERE b.id = due.id
			RETURNING b.*, due.from_status
		), seats AS (
			UPDATE tours t
			SET current_participants = GREATEST(t.current_participants - s.n, 0), updated_at = $3
			FROM (SELECT tour_id, SUM(participants)::int AS n FROM expired GROUP BY tour_id) s
			WHERE t.id = s.tour_id
		), events AS (
			INSERT INTO booking_status_events (id, booking_id, from_status, to_status, actor, reason, created_at)
			SELECT gen_random_uuid(), id, from_status, $1, $4, 'payment deadline passed', $3
			FROM expired
		)
		SELECT ` + bookingColumns + ` FROM expired`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPaymentExpired,
		pq.Array(domain.AwaitingPaymentStatuses),
		now,
		domain.ActorScheduler,
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) History(ctx context.Context, bookingID string) ([]*domain.BookingStatusEvent, error) {
	if _, err := r.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	query := `SELECT id, booking_id, from_status, to_status, actor, reason, created_at
			  FROM booking_status_events
			  WHERE booking_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list status events: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingStatusEvent
	for rows.Next() {
		var e domain.BookingStatusEvent
		if err = rows.Scan(
			&e.ID, &e.BookingID, &e.FromStatus, &e.ToStatus,
			&e.Actor, &e.Reason, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan status event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count bookings by status: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var (
			status domain.BookingStatus
			n      int
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan booking count: %w", err)
		}
		res[status.Normalize()] += n
	}

	return res, rows.Err()
}

func insertStatusEvent(ctx context.Context, tx *sql.Tx, e *domain.BookingStatusEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `INSERT INTO booking_status_events (id, booking_id, from_status, to_status, actor, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query,
		e.ID, e.BookingID, e.FromStatus, e.ToStatus, e.Actor, e.Reason, e.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert status event: %w", err)
	}
	return nil
}

func scanBooking(s rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.Scan(
		&b.ID, &b.BookingNumber, &b.TourID, &b.TourTitle, &b.CustomerName, &b.Phone, &b.Email,
		&b.Participants, &b.SpecialRequests, &b.Status, &b.DepartureDate, &b.TotalAmount,
		&b.PaymentDueDate, &b.CancelReason, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
