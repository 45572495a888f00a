package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-server/internal/ledger"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	bank := ledger.NewBank(store)

	savings, err := bank.AddAccount(ctx, ledger.KindSavings)
	require.NoError(t, err)
	checking, err := bank.AddAccount(ctx, ledger.KindChecking)
	require.NoError(t, err)

	require.NoError(t, savings.AddTransaction(ctx, amount("1000.00"), date(2024, time.January, 5)))
	require.NoError(t, savings.AddTransaction(ctx, amount("-50.00"), date(2024, time.January, 6)))
	require.NoError(t, checking.AddTransaction(ctx, amount("80.00"), date(2024, time.March, 10)))
	require.NoError(t, checking.AssessInterestAndFees(ctx))

	reloaded, err := store.LoadBank(ctx)
	require.NoError(t, err)

	for _, original := range bank.Accounts() {
		restored := reloaded.Account(original.Number())
		require.NotNil(t, restored, "account %d missing after reload", original.Number())

		assert.True(t, original.Balance().Equal(restored.Balance()),
			"account %d balance: %s vs %s", original.Number(), original.Balance(), restored.Balance())
		assert.Equal(t, original.String(), restored.String())

		want := original.Transactions()
		got := restored.Transactions()
		require.Len(t, got, len(want))
		for i := range want {
			assert.True(t, want[i].Amount().Equal(got[i].Amount()))
			assert.Equal(t, want[i].Date(), got[i].Date())
			assert.Equal(t, want[i].IsExempt(), got[i].IsExempt())
		}
	}
}

func TestMemoryStore_ReloadedBankStaysConsistent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	bank := ledger.NewBank(store)

	savings, err := bank.AddAccount(ctx, ledger.KindSavings)
	require.NoError(t, err)
	require.NoError(t, savings.AddTransaction(ctx, amount("100.00"), date(2024, time.January, 10)))

	reloaded, err := store.LoadBank(ctx)
	require.NoError(t, err)

	// Posting rules still apply against the reloaded history.
	restored := reloaded.Account(1)
	err = restored.AddTransaction(ctx, amount("5.00"), date(2024, time.January, 9))
	var seqErr *ledger.SequenceError
	assert.ErrorAs(t, err, &seqErr)

	// And further postings keep flowing into the same store.
	require.NoError(t, restored.AddTransaction(ctx, amount("5.00"), date(2024, time.January, 11)))
	again, err := store.LoadBank(ctx)
	require.NoError(t, err)
	assert.Len(t, again.Account(1).Transactions(), 2)
}

func TestMemoryStore_TransactionForUnknownAccount(t *testing.T) {
	store := NewMemoryStore()
	tx := ledger.NewTransaction(amount("1.00"), date(2024, time.January, 5), false)

	err := store.PersistTransaction(context.Background(), 42, tx)
	assert.Error(t, err)
}

func TestMemoryStore_DuplicateAccount(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.PersistAccount(context.Background(), 1, ledger.KindSavings))
	assert.Error(t, store.PersistAccount(context.Background(), 1, ledger.KindSavings))
}
