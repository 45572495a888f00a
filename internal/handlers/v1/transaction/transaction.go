package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// Transaction is the API response model for a posted transaction.
type Transaction struct {
	Amount  string `json:"amount" doc:"Signed decimal amount"`
	Date    string `json:"date" doc:"Posting date, YYYY-MM-DD"`
	Exempt  bool   `json:"exempt" doc:"True for bank-generated interest and fee postings"`
	Display string `json:"display" doc:"Stable display string, e.g. '2024-01-05, $50.00'"`
}

// actionProcessor is the interface for submitting actions to the bank
// worker.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func fromView(v actions.TransactionView) Transaction {
	return Transaction{
		Amount:  v.Amount.String(),
		Date:    v.Date.Format(time.DateOnly),
		Exempt:  v.Exempt,
		Display: v.Display,
	}
}
