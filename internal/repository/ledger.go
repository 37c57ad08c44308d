package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type LedgerRepository struct {
	db       DB
	strategy retry.Strategy
}

func NewLedgerRepo(db DB) *LedgerRepository {
	return &LedgerRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const ledgerColumns = `id, user_id, amount, transaction_type, balance_before, balance_after,
	description, reference_id, created_at`

func (r *LedgerRepository) Post(ctx context.Context, entry *domain.MileageTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = postEntryTx(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit()
}

// postEntryTx appends entry and moves the cached balance. The user row lock
// serializes every post for the same user.
func postEntryTx(ctx context.Context, tx *sql.Tx, entry *domain.MileageTransaction) error {
	var balance int64
	err := tx.QueryRowContext(ctx,
		`SELECT mileage FROM users WHERE id = $1 FOR UPDATE`, entry.UserID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("lock user balance: %w", err)
	}

	after, err := domain.ApplyTransaction(balance, entry.TransactionType, entry.Amount)
	if err != nil {
		return err
	}
	entry.BalanceBefore = balance
	entry.BalanceAfter = after

	query := `INSERT INTO mileage_transactions (` + ledgerColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Amount, entry.TransactionType,
		entry.BalanceBefore, entry.BalanceAfter, entry.Description,
		entry.ReferenceID, entry.CreatedAt,
	); err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert mileage transaction: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET mileage = $2 WHERE id = $1`, entry.UserID, entry.BalanceAfter,
	); err != nil {
		return fmt.Errorf("update cached balance: %w", err)
	}

	return nil
}

func (r *LedgerRepository) Balance(ctx context.Context, userID string) (int64, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT mileage FROM users WHERE id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}

	var balance int64
	if err = row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("scan balance: %w", err)
	}

	return balance, nil
}

func (r *LedgerRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.MileageTransaction, int, error) {
	types := make([]string, 0, len(filter.Types))
	for _, t := range filter.Types {
		types = append(types, string(t))
	}

	where := `WHERE user_id = $1
			    AND (cardinality($2::text[]) = 0 OR transaction_type = ANY($2))
			    AND ($3::timestamptz IS NULL OR created_at >= $3)
			    AND ($4::timestamptz IS NULL OR created_at < $4)`
	args := []any{filter.UserID, pq.Array(types), nullTime(filter.From), nullTime(filter.To)}

	var total int
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM mileage_transactions `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count mileage transactions: %w", err)
	}
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan mileage count: %w", err)
	}

	query := `SELECT ` + ledgerColumns + ` FROM mileage_transactions ` + where + `
			  ORDER BY seq DESC
			  LIMIT $5 OFFSET $6`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		append(args, filter.Page.Limit(), filter.Page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list mileage transactions: %w", err)
	}
	defer rows.Close()

	var res []*domain.MileageTransaction
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan mileage transaction: %w", err)
		}
		res = append(res, e)
	}

	return res, total, rows.Err()
}

func (r *LedgerRepository) Entries(ctx context.Context, userID string) ([]domain.MileageTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM mileage_transactions
			  WHERE user_id = $1
			  ORDER BY seq`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var res []domain.MileageTransaction
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mileage transaction: %w", err)
		}
		res = append(res, *e)
	}

	return res, rows.Err()
}

func scanLedgerEntry(s rowScanner) (*domain.MileageTransaction, error) {
	var (
		e   domain.MileageTransaction
		ref sql.NullString
	)
	if err := s.Scan(
		&e.ID, &e.UserID, &e.Amount, &e.TransactionType, &e.BalanceBefore, &e.BalanceAfter,
		&e.Description, &ref, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	if ref.Valid {
		e.ReferenceID = &ref.String
	}
	return &e, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
