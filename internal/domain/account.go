package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// KindAccount is the aggregate-counter kind for bank accounts.
const KindAccount = "account"

// Account is a bank account. The balance is in cents and changes only through
// Deposit and Withdraw.
type Account struct {
	Holder    string    `json:"holder"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`

	balance int64
}

// NewAccount opens an account with a trusted initial balance and a generated
// account number.
func NewAccount(holder string, initialCents int64) *Account {
	return &Account{
		Holder:    holder,
		Number:    newAccountNumber(),
		CreatedAt: time.Now(),
		balance:   initialCents,
	}
}

func newAccountNumber() string {
	return fmt.Sprintf("ACC-%s", uuid.NewString()[:8])
}

// Balance returns the current balance in cents.
func (a *Account) Balance() int64 { return a.balance }

// Deposit adds amount to the balance. Non-positive amounts are rejected.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	a.balance += amount
	return nil
}

// Withdraw subtracts amount from the balance. The amount must be positive and
// must not exceed the current balance.
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}
