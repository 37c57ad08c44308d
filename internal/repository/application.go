package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type ApplicationRepository struct {
	db       DB
	strategy retry.Strategy
}

func NewApplicationRepo(db DB) *ApplicationRepository {
	return &ApplicationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const applicationColumns = `id, user_id, type, amount, status, bank_name, account_number,
	account_holder, request_date, processed_date, admin_notes, transaction_id`

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (id, user_id, type, amount, status, bank_name,
				account_number, account_holder, request_date, admin_notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		a.ID, a.UserID, a.Type, a.Amount, a.Status, a.Bank.BankName,
		a.Bank.AccountNumber, a.Bank.AccountHolder, a.RequestDate, a.AdminNotes,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert application: %w", err)
	}

	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}

	return a, nil
}

func (r *ApplicationRepository) List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.Application, int, error) {
	where := `WHERE ($1 = '' OR user_id::text = $1)
			    AND ($2 = '' OR status = $2)
			    AND ($3 = '' OR type = $3)`
	args := []any{filter.UserID, string(filter.Status), string(filter.Type)}

	var total int
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM applications `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan application count: %w", err)
	}

	query := `SELECT ` + applicationColumns + ` FROM applications ` + where + `
			  ORDER BY request_date DESC, id
			  LIMIT $4 OFFSET $5`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		append(args, filter.Page.Limit(), filter.Page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan application: %w", err)
		}
		res = append(res, a)
	}

	return res, total, rows.Err()
}

func (r *ApplicationRepository) MarkProcessing(ctx context.Context, d domain.Decision) (*domain.Application, error) {
	query := `UPDATE applications
			  SET status = $2, admin_notes = COALESCE(NULLIF($3, ''), admin_notes)
			  WHERE id = $1 AND status = $4
			  RETURNING ` + applicationColumns
	return r.decide(ctx, d.ApplicationID, query, d.ApplicationID, domain.ApplicationProcessing, d.Notes,
		domain.ApplicationPending)
}

func (r *ApplicationRepository) Reject(ctx context.Context, d domain.Decision) (*domain.Application, error) {
	query := `UPDATE applications
			  SET status = $2, admin_notes = COALESCE(NULLIF($3, ''), admin_notes), processed_date = $5
			  WHERE id = $1 AND status = ANY($4)
			  RETURNING ` + applicationColumns
	return r.decide(ctx, d.ApplicationID, query, d.ApplicationID, domain.ApplicationRejected, d.Notes,
		pq.Array([]domain.ApplicationStatus{domain.ApplicationPending, domain.ApplicationProcessing}), d.At)
}

// decide runs a guarded status update and, when it matches nothing, reports
// why.
func (r *ApplicationRepository) decide(ctx context.Context, id, query string, args ...any) (*domain.Application, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	a, err := scanApplication(row)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan application: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.Open() {
		return nil, domain.ErrApplicationAlreadyProcessed
	}
	return nil, fmt.Errorf("%w: application is %s", domain.ErrApplicationStatusTransition, current.Status)
}

// Approve locks the application, posts its ledger entry and completes it in
// one transaction. A ledger failure leaves the application untouched.
func (r *ApplicationRepository) Approve(ctx context.Context, d domain.Decision, entryID string) (*domain.Application, *domain.MileageTransaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	a, err := scanApplication(tx.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 FOR UPDATE`, d.ApplicationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrApplicationNotFound
		}
		return nil, nil, fmt.Errorf("lock application: %w", err)
	}
	if !a.Status.Open() {
		return nil, nil, domain.ErrApplicationAlreadyProcessed
	}

	ref := a.ID
	entry := &domain.MileageTransaction{
		ID:              entryID,
		UserID:          a.UserID,
		Amount:          a.Amount,
		TransactionType: a.Type.TransactionType(),
		Description:     a.LedgerDescription(),
		ReferenceID:     &ref,
		CreatedAt:       d.At,
	}
	if err = postEntryTx(ctx, tx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateReference) {
			return nil, nil, domain.ErrApplicationAlreadyProcessed
		}
		return nil, nil, err
	}

	query := `UPDATE applications
			  SET status = $2, processed_date = $3,
			      admin_notes = COALESCE(NULLIF($4, ''), admin_notes), transaction_id = $5
			  WHERE id = $1
			  RETURNING ` + applicationColumns
	a, err = scanApplication(tx.QueryRowContext(ctx, query,
		a.ID, domain.ApplicationCompleted, d.At, d.Notes, entry.ID))
	if err != nil {
		return nil, nil, fmt.Errorf("complete application: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit approve: %w", err)
	}

	return a, entry, nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count applications by status: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.ApplicationStatus]int)
	for rows.Next() {
		var (
			status domain.ApplicationStatus
			n      int
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan application count: %w", err)
		}
		res[status] = n
	}

	return res, rows.Err()
}

func scanApplication(s rowScanner) (*domain.Application, error) {
	var (
		a         domain.Application
		processed sql.NullTime
		txID      sql.NullString
	)
	if err := s.Scan(
		&a.ID, &a.UserID, &a.Type, &a.Amount, &a.Status, &a.Bank.BankName,
		&a.Bank.AccountNumber, &a.Bank.AccountHolder, &a.RequestDate, &processed,
		&a.AdminNotes, &txID,
	); err != nil {
		return nil, err
	}
	if processed.Valid {
		a.ProcessedDate = &processed.Time
	}
	if txID.Valid {
		a.TransactionID = &txID.String
	}
	return &a, nil
}
