package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockStore is a mock for Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) PersistAccount(ctx context.Context, number int, kind Kind) error {
	args := m.Called(ctx, number, kind)
	return args.Error(0)
}

func (m *mockStore) PersistTransaction(ctx context.Context, accountNumber int, t Transaction) error {
	args := m.Called(ctx, accountNumber, t)
	return args.Error(0)
}

func TestAddAccount_PersistsBeforeAppending(t *testing.T) {
	store := new(mockStore)
	store.On("PersistAccount", mock.Anything, 1, KindSavings).Return(nil)

	b := NewBank(store)
	a, err := b.AddAccount(context.Background(), KindSavings)

	require.NoError(t, err)
	require.NotNil(t, a)
	store.AssertExpectations(t)
}

func TestAddAccount_StoreFailureLeavesBankUnchanged(t *testing.T) {
	store := new(mockStore)
	store.On("PersistAccount", mock.Anything, 1, KindChecking).
		Return(errors.New("connection refused"))

	b := NewBank(store)
	a, err := b.AddAccount(context.Background(), KindChecking)

	assert.Error(t, err)
	assert.Nil(t, a)
	assert.Empty(t, b.Accounts())
}

func TestAddAccount_UnknownKindNeverTouchesStore(t *testing.T) {
	store := new(mockStore)

	b := NewBank(store)
	a, err := b.AddAccount(context.Background(), Kind("bonds"))

	assert.NoError(t, err)
	assert.Nil(t, a)
	store.AssertNotCalled(t, "PersistAccount")
}

func TestAddTransaction_AcceptedPostingIsPersisted(t *testing.T) {
	store := new(mockStore)
	store.On("PersistAccount", mock.Anything, 1, KindChecking).Return(nil)
	store.On("PersistTransaction", mock.Anything, 1, mock.MatchedBy(func(tx Transaction) bool {
		return tx.Amount().Equal(amount("100.00")) && !tx.IsExempt()
	})).Return(nil)

	b := NewBank(store)
	a, err := b.AddAccount(context.Background(), KindChecking)
	require.NoError(t, err)

	require.NoError(t, a.AddTransaction(context.Background(), amount("100.00"), date(2024, time.January, 5)))
	store.AssertExpectations(t)
}

func TestAddTransaction_RejectedPostingIsNotPersisted(t *testing.T) {
	store := new(mockStore)
	store.On("PersistAccount", mock.Anything, 1, KindChecking).Return(nil)

	b := NewBank(store)
	a, err := b.AddAccount(context.Background(), KindChecking)
	require.NoError(t, err)

	err = a.AddTransaction(context.Background(), amount("-10.00"), date(2024, time.January, 5))

	var overdraw *OverdrawError
	assert.ErrorAs(t, err, &overdraw)
	store.AssertNotCalled(t, "PersistTransaction")
}

func TestAddTransaction_StoreFailureRollsBackTheAppend(t *testing.T) {
	store := new(mockStore)
	store.On("PersistAccount", mock.Anything, 1, KindChecking).Return(nil)
	store.On("PersistTransaction", mock.Anything, 1, mock.Anything).
		Return(errors.New("disk full")).Once()

	b := NewBank(store)
	a, err := b.AddAccount(context.Background(), KindChecking)
	require.NoError(t, err)

	err = a.AddTransaction(context.Background(), amount("100.00"), date(2024, time.January, 5))

	assert.Error(t, err)
	assert.Empty(t, a.Transactions(), "failed persist must not leave the transaction in memory")
	assert.True(t, a.Balance().IsZero())

	// The account is usable again once the store recovers.
	store.On("PersistTransaction", mock.Anything, 1, mock.Anything).Return(nil)
	assert.NoError(t, a.AddTransaction(context.Background(), amount("100.00"), date(2024, time.January, 5)))
}
