package actions

import (
	"context"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// AssessAccrual runs the monthly interest and fee assessment on one
// account.
type AssessAccrual struct {
	AccountNumber int

	Account AccountView

	IAction
}

func (a *AssessAccrual) Perform(ctx context.Context, bank *ledger.Bank) error {
	acct := bank.Account(a.AccountNumber)
	if acct == nil {
		return ErrAccountNotFound
	}

	if err := acct.AssessInterestAndFees(ctx); err != nil {
		return err
	}

	a.Account = viewAccount(acct)
	return nil
}
