package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultBranch is the fixed branch code for this deployment
const DefaultBranch = "0001"

// BankAccount is the capability surface a transaction operates on
type BankAccount interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Balance() decimal.Decimal
	Number() int
	Branch() string
	Holder() *Client
	Ledger() *Ledger
	Summary() string
}

// Account holds a balance and applies the base deposit/withdrawal rules.
// The balance is only ever mutated through Deposit and Withdraw.
type Account struct {
	number  int
	branch  string
	balance decimal.Decimal
	holder  *Client
	ledger  *Ledger
}

// NewAccount opens a zero-balance account for holder with the given number.
// The caller is responsible for registering the account with the holder and
// with the registry.
func NewAccount(holder *Client, number int) *Account {
	return &Account{
		number: number,
		branch: DefaultBranch,
		holder: holder,
		ledger: NewLedger(),
	}
}

// Deposit increases the balance by amount. The ledger is not written here;
// recording on success is the transaction's responsibility.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw decreases the balance by amount. The balance never goes negative.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Number returns the account number
func (a *Account) Number() int {
	return a.number
}

// Branch returns the branch code
func (a *Account) Branch() string {
	return a.branch
}

// Holder returns the owning client
func (a *Account) Holder() *Client {
	return a.holder
}

// Ledger returns the account's transaction history
func (a *Account) Ledger() *Ledger {
	return a.ledger
}

// Summary returns a short human-readable description for listings
func (a *Account) Summary() string {
	return fmt.Sprintf("Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s", a.branch, a.number, a.holder.Name)
}

// CheckingAccount specializes Account with a per-withdrawal ceiling and a
// maximum withdrawal count. The count is a lifetime cap over the whole
// ledger, not a daily window.
type CheckingAccount struct {
	Account
	withdrawalCeiling decimal.Decimal
	maxWithdrawals    int
}

// NewCheckingAccount opens a zero-balance checking account with the given
// limits, both fixed at creation.
func NewCheckingAccount(holder *Client, number int, ceiling decimal.Decimal, maxWithdrawals int) *CheckingAccount {
	return &CheckingAccount{
		Account:           *NewAccount(holder, number),
		withdrawalCeiling: ceiling,
		maxWithdrawals:    maxWithdrawals,
	}
}

// Withdraw rejects amounts above the ceiling, then withdrawals past the
// maximum count, then delegates to the base rule. Exactly one failure reason
// is reported per call.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(c.withdrawalCeiling) {
		return ErrWithdrawalCeilingExceeded
	}
	if c.ledger.CountKind(KindWithdrawal) >= c.maxWithdrawals {
		return ErrWithdrawalCountExceeded
	}
	return c.Account.Withdraw(amount)
}

// WithdrawalCeiling returns the per-withdrawal ceiling amount
func (c *CheckingAccount) WithdrawalCeiling() decimal.Decimal {
	return c.withdrawalCeiling
}

// MaxWithdrawals returns the maximum number of withdrawals over the account lifetime
func (c *CheckingAccount) MaxWithdrawals() int {
	return c.maxWithdrawals
}
