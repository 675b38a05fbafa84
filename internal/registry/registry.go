// Package registry owns the client and account collections for one branch.
// It replaces the two flat process-wide lists with an explicit service that
// is injected into operation handlers.
package registry

import (
	"github.com/shopspring/decimal"

	"github.com/caixadev/teller/internal/model"
)

// CheckingPolicy carries the limits applied to accounts opened by the registry
type CheckingPolicy struct {
	WithdrawalCeiling decimal.Decimal
	MaxWithdrawals    int
}

// DefaultCheckingPolicy returns the deployment defaults
func DefaultCheckingPolicy() CheckingPolicy {
	return CheckingPolicy{
		WithdrawalCeiling: decimal.NewFromInt(500),
		MaxWithdrawals:    3,
	}
}

// Registry houses all clients and accounts of the branch. Account numbers
// are assigned sequentially starting at 1. Not safe for concurrent use.
type Registry struct {
	policy   CheckingPolicy
	clients  []*model.Client
	accounts []model.BankAccount
}

// New creates an empty registry applying policy to new accounts
func New(policy CheckingPolicy) *Registry {
	return &Registry{policy: policy}
}

// CreateClient registers a new client. The tax id must be unique across all
// clients.
func (r *Registry) CreateClient(name, taxID, birthDate, address string) (*model.Client, error) {
	if _, err := r.FindClientByTaxID(taxID); err == nil {
		return nil, model.ErrDuplicateClient
	}
	client := model.NewClient(name, taxID, birthDate, address)
	r.clients = append(r.clients, client)
	return client, nil
}

// FindClientByTaxID returns the first client with the given tax id
func (r *Registry) FindClientByTaxID(taxID string) (*model.Client, error) {
	for _, client := range r.clients {
		if client.TaxID == taxID {
			return client, nil
		}
	}
	return nil, model.ErrClientNotFound
}

// OpenAccount opens a checking account for the client with the given tax id,
// registers it with both the registry and the client, and returns it.
func (r *Registry) OpenAccount(taxID string) (model.BankAccount, error) {
	client, err := r.FindClientByTaxID(taxID)
	if err != nil {
		return nil, err
	}

	number := len(r.accounts) + 1
	account := model.NewCheckingAccount(client, number, r.policy.WithdrawalCeiling, r.policy.MaxWithdrawals)
	r.accounts = append(r.accounts, account)
	client.AddAccount(account)

	return account, nil
}

// FirstAccountOf resolves the account an operation targets. Multi-account
// selection is not supported; the client's first account always wins.
func (r *Registry) FirstAccountOf(client *model.Client) (model.BankAccount, error) {
	accounts := client.Accounts()
	if len(accounts) == 0 {
		return nil, model.ErrAccountNotFound
	}
	return accounts[0], nil
}

// Accounts returns all accounts in opening order
func (r *Registry) Accounts() []model.BankAccount {
	out := make([]model.BankAccount, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// NewAccountIterator returns a fresh traversal over all accounts in opening order
func (r *Registry) NewAccountIterator() *model.AccountIterator {
	return model.NewAccountIterator(r.accounts)
}
