package actions

import (
	"context"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// OpenAccount opens a new account of the given kind. Created is false
// when the kind is unknown; the bank treats that as a no-op.
type OpenAccount struct {
	Kind ledger.Kind

	Created bool
	Account AccountView

	IAction
}

func (a *OpenAccount) Perform(ctx context.Context, bank *ledger.Bank) error {
	acct, err := bank.AddAccount(ctx, a.Kind)
	if err != nil {
		return err
	}
	if acct == nil {
		return nil
	}

	a.Created = true
	a.Account = viewAccount(acct)
	return nil
}
