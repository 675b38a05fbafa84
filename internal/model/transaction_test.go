package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit_RegisterOn(t *testing.T) {
	account := NewAccount(newTestClient(), 1)
	tx := NewDeposit(dec("100.00"))

	require.NoError(t, tx.RegisterOn(account))

	assert.True(t, account.Balance().Equal(dec("100.00")))
	entries := account.Ledger().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, KindDeposit, entries[0].Kind)
	assert.True(t, entries[0].Amount.Equal(dec("100.00")))
	assert.Equal(t, tx.ID(), entries[0].TransactionID)
	assert.NotEqual(t, uuid.Nil, entries[0].ID)
	assert.False(t, entries[0].RecordedAt.IsZero())
}

func TestDeposit_RegisterOn_RejectedLeavesLedgerUntouched(t *testing.T) {
	account := NewAccount(newTestClient(), 1)

	err := NewDeposit(dec("-5.00")).RegisterOn(account)

	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.True(t, account.Balance().IsZero())
	assert.Equal(t, 0, account.Ledger().Len())
}

func TestWithdrawal_RegisterOn(t *testing.T) {
	account := NewAccount(newTestClient(), 1)
	require.NoError(t, NewDeposit(dec("100.00")).RegisterOn(account))

	require.NoError(t, NewWithdrawal(dec("30.00")).RegisterOn(account))

	assert.True(t, account.Balance().Equal(dec("70.00")))
	entries := account.Ledger().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, KindWithdrawal, entries[1].Kind)
	assert.True(t, entries[1].Amount.Equal(dec("30.00")))
}

func TestWithdrawal_RegisterOn_RejectedLeavesLedgerUntouched(t *testing.T) {
	account := NewAccount(newTestClient(), 1)
	require.NoError(t, NewDeposit(dec("100.00")).RegisterOn(account))

	err := NewWithdrawal(dec("150.00")).RegisterOn(account)

	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, account.Balance().Equal(dec("100.00")))
	assert.Equal(t, 1, account.Ledger().Len())
}

func TestTransaction_Accessors(t *testing.T) {
	deposit := NewDeposit(dec("10"))
	withdrawal := NewWithdrawal(dec("20"))

	assert.Equal(t, KindDeposit, deposit.Kind())
	assert.Equal(t, KindWithdrawal, withdrawal.Kind())
	assert.True(t, deposit.Amount().Equal(dec("10")))
	assert.True(t, withdrawal.Amount().Equal(dec("20")))
	assert.NotEqual(t, deposit.ID(), withdrawal.ID())
}

func TestClient_Execute(t *testing.T) {
	client := newTestClient()
	account := NewAccount(client, 1)
	client.AddAccount(account)

	require.NoError(t, client.Execute(account, NewDeposit(dec("50"))))
	require.ErrorIs(t, client.Execute(account, NewWithdrawal(dec("80"))), ErrInsufficientFunds)

	assert.True(t, account.Balance().Equal(dec("50")))
	assert.Equal(t, 1, account.Ledger().Len())
}

func TestClient_AddAccount(t *testing.T) {
	client := newTestClient()
	first := NewAccount(client, 1)
	second := NewAccount(client, 2)

	client.AddAccount(first)
	client.AddAccount(second)
	// no dedup on purpose
	client.AddAccount(first)

	accounts := client.Accounts()
	require.Len(t, accounts, 3)
	assert.Same(t, first, accounts[0].(*Account))
	assert.Same(t, second, accounts[1].(*Account))
}
