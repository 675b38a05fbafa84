package model

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of a monetary operation
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// TimestampLayout is the wall-clock format used on statements
const TimestampLayout = "02/01/2006, 15:04:05"

// LedgerEntry is one recorded transaction. Entries are immutable once appended.
type LedgerEntry struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	Kind          TransactionKind
	Amount        decimal.Decimal
	RecordedAt    time.Time
}

// Timestamp returns the recording time formatted for statements
func (e LedgerEntry) Timestamp() string {
	return e.RecordedAt.Format(TimestampLayout)
}

// Ledger is the append-only transaction history of a single account.
// It is not safe for concurrent use.
type Ledger struct {
	entries []LedgerEntry
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends an entry to the end of the ledger
func (l *Ledger) Record(entry LedgerEntry) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of all recorded entries in insertion order
func (l *Ledger) Entries() []LedgerEntry {
	return slices.Clone(l.entries)
}

// Len returns the number of recorded entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// CountKind returns how many recorded entries have the given kind
func (l *Ledger) CountKind(kind TransactionKind) int {
	count := 0
	for _, entry := range l.entries {
		if entry.Kind == kind {
			count++
		}
	}
	return count
}

// Report returns a lazy sequence over the entries recorded before the call,
// in insertion order. kindFilter matches the entry kind case-insensitively;
// an empty filter yields every entry. The sequence iterates a snapshot, so
// entries recorded after the call are not observed, and ranging over the
// same sequence again restarts from the first entry.
func (l *Ledger) Report(kindFilter string) iter.Seq[LedgerEntry] {
	snapshot := slices.Clone(l.entries)
	return func(yield func(LedgerEntry) bool) {
		for _, entry := range snapshot {
			if kindFilter != "" && !strings.EqualFold(kindFilter, string(entry.Kind)) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}
