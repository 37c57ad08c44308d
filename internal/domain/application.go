package domain

import (
	"fmt"
	"strings"
	"time"
)

type ApplicationType string

const (
	ApplicationDeposit    ApplicationType = "deposit"
	ApplicationWithdrawal ApplicationType = "withdrawal"
)

func (t ApplicationType) Valid() bool {
	return t == ApplicationDeposit || t == ApplicationWithdrawal
}

// TransactionType is the ledger entry type posted when the application is approved.
func (t ApplicationType) TransactionType() TransactionType {
	if t == ApplicationWithdrawal {
		return TransactionWithdrawal
	}
	return TransactionDeposit
}

type ApplicationStatus string

const (
	ApplicationPending    ApplicationStatus = "pending"
	ApplicationProcessing ApplicationStatus = "processing"
	ApplicationCompleted  ApplicationStatus = "completed"
	ApplicationRejected   ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationProcessing, ApplicationCompleted, ApplicationRejected:
		return true
	}
	return false
}

// Open reports whether an admin can still act on the application.
func (s ApplicationStatus) Open() bool {
	return s == ApplicationPending || s == ApplicationProcessing
}

type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

type Application struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Type          ApplicationType   `json:"type"`
	Amount        int64             `json:"amount"`
	Status        ApplicationStatus `json:"status"`
	Bank          BankDetails       `json:"bank"`
	RequestDate   time.Time         `json:"request_date"`
	ProcessedDate *time.Time        `json:"processed_date,omitempty"`
	AdminNotes    string            `json:"admin_notes"`
	TransactionID *string           `json:"transaction_id,omitempty"`
}

// LedgerDescription is the description written on the entry the approval posts.
func (a *Application) LedgerDescription() string {
	if a.Type == ApplicationWithdrawal {
		return fmt.Sprintf("withdrawal approved (application %s)", a.ID)
	}
	return fmt.Sprintf("deposit approved (application %s)", a.ID)
}

type SubmitApplicationInput struct {
	UserID string
	Type   ApplicationType
	Amount int64
	Bank   *BankDetails
}

func (in SubmitApplicationInput) Validate() error {
	if in.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: type must be deposit or withdrawal", ErrValidation)
	}
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if in.Type == ApplicationWithdrawal {
		if in.Bank == nil ||
			strings.TrimSpace(in.Bank.BankName) == "" ||
			strings.TrimSpace(in.Bank.AccountNumber) == "" ||
			strings.TrimSpace(in.Bank.AccountHolder) == "" {
			return fmt.Errorf("%w: withdrawal requires bank_name, account_number and account_holder", ErrValidation)
		}
	}
	return nil
}

// Decision is an admin action on an open application.
type Decision struct {
	ApplicationID string
	Notes         string
	At            time.Time
}

type ApplicationFilter struct {
	UserID string
	Status ApplicationStatus
	Type   ApplicationType
	Page   Page
}
