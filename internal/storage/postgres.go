package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// PostgresStore is the durable ledger store. Every call commits before
// returning; the ledger core relies on that for its commit-per-operation
// model.
type PostgresStore struct {
	db *sql.DB
}

var _ ledger.Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// PersistAccount records a newly opened account.
func (s *PostgresStore) PersistAccount(ctx context.Context, number int, kind ledger.Kind) error {
	query := `
		INSERT INTO accounts (account_number, kind)
		VALUES ($1, $2)
	`
	_, err := s.db.ExecContext(ctx, query, number, string(kind))
	if err != nil {
		return fmt.Errorf("failed to persist account %d: %w", number, err)
	}
	return nil
}

// PersistTransaction records an accepted transaction for an account.
func (s *PostgresStore) PersistTransaction(ctx context.Context, accountNumber int, t ledger.Transaction) error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("failed to generate transaction id: %w", err)
	}

	query := `
		INSERT INTO transactions (id, account_number, amount, posted_on, exempt)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(ctx, query, id, accountNumber, t.Amount(), t.Date(), t.IsExempt())
	if err != nil {
		return fmt.Errorf("failed to persist transaction on account %d: %w", accountNumber, err)
	}
	return nil
}

// LoadBank rebuilds the full bank from the accounts and transactions
// tables. Transactions are loaded in their original posting order so the
// rebuilt accounts behave identically.
func (s *PostgresStore) LoadBank(ctx context.Context) (*ledger.Bank, error) {
	accountQuery := `
		SELECT account_number, kind
		FROM accounts
		ORDER BY account_number ASC
	`
	rows, err := s.db.QueryContext(ctx, accountQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	defer rows.Close()

	var records []ledger.AccountRecord
	index := make(map[int]int)
	for rows.Next() {
		var number int
		var kind string
		if err := rows.Scan(&number, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		index[number] = len(records)
		records = append(records, ledger.AccountRecord{Number: number, Kind: ledger.Kind(kind)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}

	transactionQuery := `
		SELECT account_number, amount, posted_on, exempt
		FROM transactions
		ORDER BY account_number ASC, created_at ASC, id ASC
	`
	txRows, err := s.db.QueryContext(ctx, transactionQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	defer txRows.Close()

	for txRows.Next() {
		var accountNumber int
		var amount decimal.Decimal
		var postedOn time.Time
		var exempt bool
		if err := txRows.Scan(&accountNumber, &amount, &postedOn, &exempt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		i, ok := index[accountNumber]
		if !ok {
			return nil, fmt.Errorf("transaction references unknown account %d", accountNumber)
		}
		records[i].Transactions = append(records[i].Transactions,
			ledger.NewTransaction(amount, postedOn, exempt))
	}
	if err := txRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}

	return ledger.RestoreBank(s, records)
}
