// Package ledger holds the transaction ledger core: banks, accounts and
// their posting, limit and accrual rules. Persistence and transport are
// collaborators injected from the outside.
package ledger

import (
	"context"
	"fmt"
)

// Bank owns a collection of accounts and hands out sequential account
// numbers starting at 1. It is an in-memory aggregate with exactly one
// mutator; serialization of access is the caller's concern.
type Bank struct {
	store    Store
	accounts []*Account
}

// NewBank creates an empty bank backed by the given store. A nil store is
// allowed and keeps the bank purely in memory.
func NewBank(store Store) *Bank {
	return &Bank{store: store}
}

// AddAccount opens a new account of the given kind, persists it and
// returns it. An unknown kind is a silent no-op returning (nil, nil); the
// account number is not consumed.
func (b *Bank) AddAccount(ctx context.Context, kind Kind) (*Account, error) {
	p := policyFor(kind)
	if p == nil {
		return nil, nil
	}

	number := len(b.accounts) + 1
	if b.store != nil {
		if err := b.store.PersistAccount(ctx, number, kind); err != nil {
			return nil, fmt.Errorf("persist account: %w", err)
		}
	}

	a := &Account{number: number, policy: p, store: b.store}
	b.accounts = append(b.accounts, a)
	return a, nil
}

// Account returns the account with the given number, or nil when no such
// account exists.
func (b *Bank) Account(number int) *Account {
	for _, a := range b.accounts {
		if a.number == number {
			return a
		}
	}
	return nil
}

// Accounts returns all accounts in insertion order.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

// AccountRecord is the persisted shape of an account, used to rebuild a
// bank from the store.
type AccountRecord struct {
	Number       int
	Kind         Kind
	Transactions []Transaction
}

// RestoreBank rebuilds a bank from persisted records. The transactions
// were accepted when first posted, so no posting rules are re-run; the
// records must be in account-number order.
func RestoreBank(store Store, records []AccountRecord) (*Bank, error) {
	b := NewBank(store)
	for _, rec := range records {
		p := policyFor(rec.Kind)
		if p == nil {
			return nil, fmt.Errorf("restore account %d: unknown kind %q", rec.Number, rec.Kind)
		}
		txns := make([]Transaction, len(rec.Transactions))
		copy(txns, rec.Transactions)
		b.accounts = append(b.accounts, &Account{
			number:       rec.Number,
			policy:       p,
			store:        store,
			transactions: txns,
		})
	}
	return b, nil
}
