package model

import "slices"

// AccountIterator walks a fixed ordered collection of accounts, producing
// one formatted summary per account. Position is held by the iterator;
// advancing past the last account is normal termination, not an error.
// A fresh iterator over the same accounts yields the identical sequence.
type AccountIterator struct {
	accounts []BankAccount
	index    int
}

// NewAccountIterator creates an iterator positioned before the first account
func NewAccountIterator(accounts []BankAccount) *AccountIterator {
	return &AccountIterator{accounts: slices.Clone(accounts)}
}

// Next returns the next account summary. ok is false once the collection is
// exhausted.
func (it *AccountIterator) Next() (summary string, ok bool) {
	if it.index >= len(it.accounts) {
		return "", false
	}
	summary = it.accounts[it.index].Summary()
	it.index++
	return summary, true
}
