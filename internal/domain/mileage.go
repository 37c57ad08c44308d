package domain

import (
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionReward     TransactionType = "reward"
	TransactionUsage      TransactionType = "usage"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionDeposit, TransactionWithdrawal, TransactionReward, TransactionUsage:
		return true
	}
	return false
}

func (t TransactionType) IsCredit() bool {
	return t == TransactionDeposit || t == TransactionReward
}

// MileageTransaction is immutable once written. Corrections are new
// offsetting entries.
type MileageTransaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	BalanceBefore   int64           `json:"balance_before"`
	BalanceAfter    int64           `json:"balance_after"`
	Description     string          `json:"description"`
	ReferenceID     *string         `json:"reference_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SignedAmount is the balance delta the entry applies.
func (m *MileageTransaction) SignedAmount() int64 {
	if m.TransactionType.IsCredit() {
		return m.Amount
	}
	return -m.Amount
}

// ApplyTransaction computes the balance after posting amount of type t on
// top of balance.
func ApplyTransaction(balance int64, t TransactionType, amount int64) (int64, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t)
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if t.IsCredit() {
		return balance + amount, nil
	}
	if amount > balance {
		return 0, ErrInsufficientBalance
	}
	return balance - amount, nil
}

// Replay rebuilds a balance from an empty ledger. Entries must be in posting
// order; a broken before/after chain is reported as an error.
func Replay(entries []MileageTransaction) (int64, error) {
	var balance int64
	for i := range entries {
		e := &entries[i]
		if e.BalanceBefore != balance {
			return balance, fmt.Errorf("entry %s: balance_before %d, replayed %d", e.ID, e.BalanceBefore, balance)
		}
		next, err := ApplyTransaction(balance, e.TransactionType, e.Amount)
		if err != nil {
			return balance, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		if next != e.BalanceAfter {
			return balance, fmt.Errorf("entry %s: balance_after %d, replayed %d", e.ID, e.BalanceAfter, next)
		}
		balance = next
	}
	return balance, nil
}

type PostInput struct {
	UserID      string
	Type        TransactionType
	Amount      int64
	Description string
	ReferenceID *string
}

func (in PostInput) Validate() error {
	if in.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, in.Type)
	}
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

type TransactionFilter struct {
	UserID string
	Types  []TransactionType
	From   *time.Time
	To     *time.Time
	Page   Page
}

type ReconcileReport struct {
	UserID     string `json:"user_id"`
	Cached     int64  `json:"cached"`
	Replayed   int64  `json:"replayed"`
	Entries    int    `json:"entries"`
	Consistent bool   `json:"consistent"`
	Problem    string `json:"problem,omitempty"`
}
