package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godswill-dev/guardian-be/internal/domain"
	"github.com/godswill-dev/guardian-be/internal/storage"
)

func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	account := domain.NewAccount("holder", 100000)
	require.NoError(t, store.CreateAccount(ctx, account))

	err := store.CreateAccount(ctx, account)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	fetched, err := store.GetAccount(ctx, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), fetched.Balance())

	_, err = store.GetAccount(ctx, "ACC-missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateAccountAppliesMutationUnderLock(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	account := domain.NewAccount("holder", 100000)
	require.NoError(t, store.CreateAccount(ctx, account))

	updated, err := store.UpdateAccount(ctx, account.Number, func(a *domain.Account) error {
		return a.Deposit(50000)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150000), updated.Balance())

	fetched, err := store.GetAccount(ctx, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), fetched.Balance())
}

func TestUpdateAccountRejectionLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	account := domain.NewAccount("holder", 100000)
	require.NoError(t, store.CreateAccount(ctx, account))

	_, err := store.UpdateAccount(ctx, account.Number, func(a *domain.Account) error {
		return a.Withdraw(200000)
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	fetched, err := store.GetAccount(ctx, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), fetched.Balance())
}

func TestGetAccountReturnsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	account := domain.NewAccount("holder", 100000)
	require.NoError(t, store.CreateAccount(ctx, account))

	fetched, err := store.GetAccount(ctx, account.Number)
	require.NoError(t, err)
	require.NoError(t, fetched.Deposit(99999))

	again, err := store.GetAccount(ctx, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), again.Balance(), "mutating a fetched copy must not touch the store")
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	user, err := domain.NewUser("goddy", "goddy@gmail.com", domain.RoleUser, "initial123")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(ctx, user))

	assert.ErrorIs(t, store.CreateUser(ctx, user), storage.ErrAlreadyExists)

	sameEmail, err := domain.NewUser("other", "goddy@gmail.com", domain.RoleUser, "other1234")
	require.NoError(t, err)
	assert.ErrorIs(t, store.CreateUser(ctx, sameEmail), storage.ErrAlreadyExists)

	byName, err := store.FindByUsername(ctx, "goddy")
	require.NoError(t, err)
	assert.Equal(t, "goddy@gmail.com", byName.Email())

	byEmail, err := store.FindByUsernameOrEmail(ctx, "GODDY@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "goddy", byEmail.Username)

	_, err = store.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateUserRejectionLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	user, err := domain.NewUser("goddy", "goddy@gmail.com", domain.RoleUser, "initial123")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(ctx, user))

	_, err = store.UpdateUser(ctx, "goddy", func(u *domain.User) error {
		return u.SetEmail("invalid-email")
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	fetched, err := store.FindByUsername(ctx, "goddy")
	require.NoError(t, err)
	assert.Equal(t, "goddy@gmail.com", fetched.Email())
}
