package storage

import (
	"context"
	"fmt"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// MemoryStore is an in-process ledger store for tests and diskless runs.
// It keeps the same account/transaction records the Postgres store would
// and supports the same full-bank reload.
type MemoryStore struct {
	records []ledger.AccountRecord
	index   map[int]int
}

var _ ledger.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[int]int)}
}

func (s *MemoryStore) PersistAccount(ctx context.Context, number int, kind ledger.Kind) error {
	if _, ok := s.index[number]; ok {
		return fmt.Errorf("account %d already persisted", number)
	}
	s.index[number] = len(s.records)
	s.records = append(s.records, ledger.AccountRecord{Number: number, Kind: kind})
	return nil
}

func (s *MemoryStore) PersistTransaction(ctx context.Context, accountNumber int, t ledger.Transaction) error {
	i, ok := s.index[accountNumber]
	if !ok {
		return fmt.Errorf("account %d not persisted", accountNumber)
	}
	s.records[i].Transactions = append(s.records[i].Transactions, t)
	return nil
}

// LoadBank rebuilds a bank from the stored records.
func (s *MemoryStore) LoadBank(ctx context.Context) (*ledger.Bank, error) {
	records := make([]ledger.AccountRecord, len(s.records))
	copy(records, s.records)
	return ledger.RestoreBank(s, records)
}
