// Package storage defines the stores handlers depend on. All state is held
// for the process lifetime only.
package storage

import (
	"context"
	"errors"

	"github.com/godswill-dev/guardian-be/internal/domain"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// AccountStore holds bank accounts. Mutations run inside UpdateAccount's
// closure under the store's lock; if the closure returns an error the account
// is unchanged and the error is passed through.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccount(ctx context.Context, number string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, number string, fn func(*domain.Account) error) (*domain.Account, error)
}

// UserStore holds users, keyed by username.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	UpdateUser(ctx context.Context, username string, fn func(*domain.User) error) (*domain.User, error)
}
