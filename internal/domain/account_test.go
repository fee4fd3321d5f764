package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountDepositWithdrawScenario(t *testing.T) {
	account := NewAccount("Godswill", 100000)
	require.Equal(t, int64(100000), account.Balance())

	require.NoError(t, account.Deposit(50000))
	assert.Equal(t, int64(150000), account.Balance())

	err := account.Withdraw(200000)
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(150000), account.Balance(), "failed withdrawal must not change the balance")

	require.NoError(t, account.Withdraw(20000))
	assert.Equal(t, int64(130000), account.Balance())
}

func TestAccountDepositRejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []int64{0, -1, -500} {
		account := NewAccount("holder", 1000)
		err := account.Deposit(amount)
		assert.ErrorIs(t, err, ErrAmountNotPositive, "amount %d", amount)
		assert.Equal(t, int64(1000), account.Balance())
	}
}

func TestAccountWithdrawRejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []int64{0, -1, -500} {
		account := NewAccount("holder", 1000)
		err := account.Withdraw(amount)
		assert.ErrorIs(t, err, ErrAmountNotPositive, "amount %d", amount)
		assert.Equal(t, int64(1000), account.Balance())
	}
}

func TestAccountWithdrawAllowsFullBalance(t *testing.T) {
	account := NewAccount("holder", 1000)
	require.NoError(t, account.Withdraw(1000))
	assert.Equal(t, int64(0), account.Balance())
}

func TestNewAccountGeneratesNumber(t *testing.T) {
	a := NewAccount("holder", 0)
	b := NewAccount("holder", 0)
	assert.True(t, strings.HasPrefix(a.Number, "ACC-"))
	assert.NotEqual(t, a.Number, b.Number)
}
