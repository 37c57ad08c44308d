package domain

import "time"

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Mileage is the cached balance: the balance_after of the user's latest
	// ledger entry.
	Mileage   int64     `json:"mileage"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name  string
	Email string
}
