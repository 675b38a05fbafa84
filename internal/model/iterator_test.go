package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccounts() []BankAccount {
	ana := NewClient("Ana", "111", "", "")
	bia := NewClient("Bia", "222", "", "")
	return []BankAccount{
		NewCheckingAccount(ana, 1, dec("500"), 3),
		NewCheckingAccount(bia, 2, dec("500"), 3),
	}
}

func drain(it *AccountIterator) []string {
	var out []string
	for {
		summary, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, summary)
	}
}

func TestAccountIterator(t *testing.T) {
	accounts := testAccounts()

	summaries := drain(NewAccountIterator(accounts))

	require.Len(t, summaries, 2)
	assert.Contains(t, summaries[0], "Ana")
	assert.Contains(t, summaries[1], "Bia")
}

func TestAccountIterator_TerminatesCleanly(t *testing.T) {
	it := NewAccountIterator(testAccounts())
	drain(it)

	// advancing past the end stays a normal termination signal
	for i := 0; i < 3; i++ {
		summary, ok := it.Next()
		assert.False(t, ok)
		assert.Empty(t, summary)
	}
}

func TestAccountIterator_FreshIteratorRestarts(t *testing.T) {
	accounts := testAccounts()

	first := drain(NewAccountIterator(accounts))
	second := drain(NewAccountIterator(accounts))

	assert.Equal(t, first, second)
}

func TestAccountIterator_Empty(t *testing.T) {
	it := NewAccountIterator(nil)

	summary, ok := it.Next()
	assert.False(t, ok)
	assert.Empty(t, summary)
}
