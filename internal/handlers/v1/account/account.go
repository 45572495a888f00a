package account

import (
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// Account is the API response model for an account.
type Account struct {
	AccountNumber int    `json:"accountNumber" doc:"Sequential account number"`
	Type          string `json:"type" doc:"Account type: savings or checking"`
	Balance       string `json:"balance" doc:"Exact decimal balance"`
	Display       string `json:"display" doc:"Stable display string, e.g. 'Savings#000000001,\tbalance: $50.00'"`
}

func fromView(v actions.AccountView) Account {
	return Account{
		AccountNumber: v.Number,
		Type:          string(v.Kind),
		Balance:       v.Balance.String(),
		Display:       v.Display,
	}
}
