package actions

import (
	"context"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// ListAccounts snapshots every account in insertion order.
type ListAccounts struct {
	Accounts []AccountView

	IAction
}

func (a *ListAccounts) Perform(ctx context.Context, bank *ledger.Bank) error {
	accounts := bank.Accounts()
	a.Accounts = make([]AccountView, len(accounts))
	for i, acct := range accounts {
		a.Accounts[i] = viewAccount(acct)
	}
	return nil
}

// GetAccount snapshots a single account by number.
type GetAccount struct {
	AccountNumber int

	Account AccountView

	IAction
}

func (a *GetAccount) Perform(ctx context.Context, bank *ledger.Bank) error {
	acct := bank.Account(a.AccountNumber)
	if acct == nil {
		return ErrAccountNotFound
	}
	a.Account = viewAccount(acct)
	return nil
}

// ListTransactions snapshots an account's transactions, date ascending.
type ListTransactions struct {
	AccountNumber int

	Transactions []TransactionView

	IAction
}

func (a *ListTransactions) Perform(ctx context.Context, bank *ledger.Bank) error {
	acct := bank.Account(a.AccountNumber)
	if acct == nil {
		return ErrAccountNotFound
	}
	a.Transactions = viewTransactions(acct)
	return nil
}
