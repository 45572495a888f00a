package actions

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// AccountView is a point-in-time copy of an account, safe to read after
// the worker has moved on to other actions.
type AccountView struct {
	Number  int
	Kind    ledger.Kind
	Balance decimal.Decimal
	Display string
}

// TransactionView is a point-in-time copy of a transaction.
type TransactionView struct {
	Amount  decimal.Decimal
	Date    time.Time
	Exempt  bool
	Display string
}

func viewAccount(a *ledger.Account) AccountView {
	return AccountView{
		Number:  a.Number(),
		Kind:    a.Kind(),
		Balance: a.Balance(),
		Display: a.String(),
	}
}

func viewTransactions(a *ledger.Account) []TransactionView {
	txns := a.Transactions()
	out := make([]TransactionView, len(txns))
	for i, t := range txns {
		out[i] = TransactionView{
			Amount:  t.Amount(),
			Date:    t.Date(),
			Exempt:  t.IsExempt(),
			Display: t.String(),
		}
	}
	return out
}
