package model

import "slices"

// Client is a person holding zero or more accounts. The client owns the
// collection of references, not the accounts themselves. Tax id uniqueness
// is enforced by the registry, not here.
type Client struct {
	Name      string
	TaxID     string
	BirthDate string
	Address   string

	accounts []BankAccount
}

// NewClient creates a client with no accounts
func NewClient(name, taxID, birthDate, address string) *Client {
	return &Client{
		Name:      name,
		TaxID:     taxID,
		BirthDate: birthDate,
		Address:   address,
	}
}

// AddAccount appends account to the client's collection. No dedup check.
func (c *Client) AddAccount(account BankAccount) {
	c.accounts = append(c.accounts, account)
}

// Accounts returns a copy of the client's account references in insertion order
func (c *Client) Accounts() []BankAccount {
	return slices.Clone(c.accounts)
}

// Execute routes a transaction to one of the client's accounts. It is the
// seam through which all monetary operations occur, kept thin so future
// authorization or audit hooks do not change callers.
func (c *Client) Execute(account BankAccount, tx Transaction) error {
	return tx.RegisterOn(account)
}
