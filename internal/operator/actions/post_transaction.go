package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// PostTransaction posts a non-exempt transaction to an account. Domain
// rejections (overdraw, sequence, limits) come back as ledger errors.
type PostTransaction struct {
	AccountNumber int
	Amount        decimal.Decimal
	Date          time.Time

	Account AccountView

	IAction
}

func (a *PostTransaction) Perform(ctx context.Context, bank *ledger.Bank) error {
	acct := bank.Account(a.AccountNumber)
	if acct == nil {
		return ErrAccountNotFound
	}

	if err := acct.AddTransaction(ctx, a.Amount, a.Date); err != nil {
		return err
	}

	a.Account = viewAccount(acct)
	return nil
}
