package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

var (
	checkingInterestRate = decimal.RequireFromString("0.0008")
	lowBalanceThreshold  = decimal.NewFromInt(100)
	lowBalanceFee        = decimal.RequireFromString("-5.75")
)

// checkingPolicy has no usage caps but charges a fee whenever the monthly
// accrual finds the balance under the low-balance threshold.
type checkingPolicy struct{}

func (checkingPolicy) kind() Kind {
	return KindChecking
}

func (checkingPolicy) displayName() string {
	return "Checking"
}

func (checkingPolicy) interestRate() decimal.Decimal {
	return checkingInterestRate
}

func (checkingPolicy) checkLimits(existing []Transaction, candidate Transaction) error {
	return nil
}

func (checkingPolicy) assessFees(ctx context.Context, a *Account, latest *Transaction) error {
	if latest == nil {
		return &SequenceError{Kind: SequenceBalance}
	}
	if a.Balance().LessThan(lowBalanceThreshold) {
		return a.post(ctx, NewTransaction(lowBalanceFee, latest.LastDayOfMonth(), true))
	}
	return nil
}
