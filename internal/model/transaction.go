package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a write-once monetary operation. It is created with an
// amount, applied exactly once against one account via RegisterOn, and then
// discarded. A successful application appends one entry to the account's
// ledger; a rejected one leaves account and ledger untouched.
type Transaction interface {
	ID() uuid.UUID
	Kind() TransactionKind
	Amount() decimal.Decimal
	RegisterOn(account BankAccount) error
}

// record appends the ledger entry for a successfully applied transaction
func record(account BankAccount, tx Transaction) {
	account.Ledger().Record(LedgerEntry{
		ID:            uuid.New(),
		TransactionID: tx.ID(),
		Kind:          tx.Kind(),
		Amount:        tx.Amount(),
		RecordedAt:    time.Now(),
	})
}

// Deposit is a transaction that credits an account
type Deposit struct {
	id     uuid.UUID
	amount decimal.Decimal
}

// NewDeposit creates a deposit transaction for the given amount
func NewDeposit(amount decimal.Decimal) *Deposit {
	return &Deposit{id: uuid.New(), amount: amount}
}

func (d *Deposit) ID() uuid.UUID           { return d.id }
func (d *Deposit) Kind() TransactionKind   { return KindDeposit }
func (d *Deposit) Amount() decimal.Decimal { return d.amount }

// RegisterOn applies the deposit to account and records it on success
func (d *Deposit) RegisterOn(account BankAccount) error {
	if err := account.Deposit(d.amount); err != nil {
		return err
	}
	record(account, d)
	return nil
}

// Withdrawal is a transaction that debits an account
type Withdrawal struct {
	id     uuid.UUID
	amount decimal.Decimal
}

// NewWithdrawal creates a withdrawal transaction for the given amount
func NewWithdrawal(amount decimal.Decimal) *Withdrawal {
	return &Withdrawal{id: uuid.New(), amount: amount}
}

func (w *Withdrawal) ID() uuid.UUID           { return w.id }
func (w *Withdrawal) Kind() TransactionKind   { return KindWithdrawal }
func (w *Withdrawal) Amount() decimal.Decimal { return w.amount }

// RegisterOn applies the withdrawal to account and records it on success
func (w *Withdrawal) RegisterOn(account BankAccount) error {
	if err := account.Withdraw(w.amount); err != nil {
		return err
	}
	record(account, w)
	return nil
}
