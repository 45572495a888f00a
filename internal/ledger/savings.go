package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	savingsDailyLimit   = 2
	savingsMonthlyLimit = 5
)

var savingsInterestRate = decimal.RequireFromString("0.0033")

// savingsPolicy caps non-exempt postings at two per day and five per
// month, in exchange for the higher interest rate.
type savingsPolicy struct{}

func (savingsPolicy) kind() Kind {
	return KindSavings
}

func (savingsPolicy) displayName() string {
	return "Savings"
}

func (savingsPolicy) interestRate() decimal.Decimal {
	return savingsInterestRate
}

func (savingsPolicy) checkLimits(existing []Transaction, candidate Transaction) error {
	sameDay := 0
	sameMonth := 0
	for _, t := range existing {
		if t.IsExempt() {
			continue
		}
		if t.InSameDay(candidate) {
			sameDay++
		}
		if t.InSameMonth(candidate) {
			sameMonth++
		}
	}
	// The daily cap wins when both would trip.
	if sameDay >= savingsDailyLimit {
		return &LimitError{Kind: LimitDay, Limit: savingsDailyLimit}
	}
	if sameMonth >= savingsMonthlyLimit {
		return &LimitError{Kind: LimitMonth, Limit: savingsMonthlyLimit}
	}
	return nil
}

func (savingsPolicy) assessFees(ctx context.Context, a *Account, latest *Transaction) error {
	return nil
}
