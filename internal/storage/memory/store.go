// Package memory provides the in-memory stores backing the service.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/godswill-dev/guardian-be/internal/domain"
	"github.com/godswill-dev/guardian-be/internal/storage"
)

// Ensure Store satisfies the store interfaces at compile time.
var (
	_ storage.AccountStore = (*Store)(nil)
	_ storage.UserStore    = (*Store)(nil)
)

// Store keeps accounts and users in maps guarded by a single mutex. Reads hand
// out copies so nothing is mutated outside the lock.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	users    map[string]*domain.User
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		users:    make(map[string]*domain.User),
	}
}

// CreateAccount inserts a new account keyed by its number.
func (s *Store) CreateAccount(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Number]; ok {
		return storage.ErrAlreadyExists
	}
	cp := *account
	s.accounts[account.Number] = &cp
	return nil
}

// GetAccount fetches an account by number.
func (s *Store) GetAccount(_ context.Context, number string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[number]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *account
	return &cp, nil
}

// UpdateAccount applies fn to the stored account under the lock and returns
// the updated copy. A rejection from fn leaves the account unchanged.
func (s *Store) UpdateAccount(_ context.Context, number string, fn func(*domain.Account) error) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[number]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if err := fn(account); err != nil {
		return nil, err
	}
	cp := *account
	return &cp, nil
}

// CreateUser inserts a new user; both username and email must be unique.
func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return storage.ErrAlreadyExists
	}
	for _, existing := range s.users {
		if existing.Email() == user.Email() {
			return storage.ErrAlreadyExists
		}
	}
	cp := *user
	s.users[user.Username] = &cp
	return nil
}

// FindByUsername fetches a user by username.
func (s *Store) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

// FindByUsernameOrEmail fetches the first user matching the identifier as
// username or email.
func (s *Store) FindByUsernameOrEmail(_ context.Context, identifier string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[identifier]; ok {
		cp := *user
		return &cp, nil
	}
	lowered := strings.ToLower(strings.TrimSpace(identifier))
	for _, user := range s.users {
		if user.Email() == lowered {
			cp := *user
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

// UpdateUser applies fn to the stored user under the lock and returns the
// updated copy. A rejection from fn leaves the user unchanged.
func (s *Store) UpdateUser(_ context.Context, username string, fn func(*domain.User) error) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if err := fn(user); err != nil {
		return nil, err
	}
	cp := *user
	return &cp, nil
}
