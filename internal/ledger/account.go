package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Store is the persistence collaborator the core calls right after an
// in-memory mutation is accepted. Implementations must make each call
// durable before returning; the core never retries or batches.
type Store interface {
	PersistAccount(ctx context.Context, number int, kind Kind) error
	PersistTransaction(ctx context.Context, accountNumber int, t Transaction) error
}

// Kind identifies an account variant.
type Kind string

const (
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
)

// policy supplies the variant-specific pieces of account behavior. The
// shared posting and interest logic lives on Account; only usage limits,
// fees and the interest rate differ between variants.
type policy interface {
	kind() Kind
	displayName() string
	interestRate() decimal.Decimal
	checkLimits(existing []Transaction, candidate Transaction) error
	assessFees(ctx context.Context, a *Account, latest *Transaction) error
}

func policyFor(kind Kind) policy {
	switch kind {
	case KindSavings:
		return savingsPolicy{}
	case KindChecking:
		return checkingPolicy{}
	default:
		return nil
	}
}

// Account holds the ordered transactions of one savings or checking
// account and enforces posting-order, overdraft and usage-limit rules.
// The balance is always recomputed from the transactions so the two can
// never drift apart.
type Account struct {
	number       int
	policy       policy
	store        Store
	transactions []Transaction
}

// Number returns the account number assigned by the bank.
func (a *Account) Number() int {
	return a.number
}

// Kind returns the account variant.
func (a *Account) Kind() Kind {
	return a.policy.kind()
}

// AddTransaction posts a non-exempt transaction of the given amount and
// date. It fails with a SequenceError if the date precedes the latest
// transaction, an OverdrawError if the amount is not covered by the
// current balance, or a LimitError if the variant's usage caps are hit.
// A rejected transaction leaves no trace, in memory or in the store.
func (a *Account) AddTransaction(ctx context.Context, amount decimal.Decimal, date time.Time) error {
	return a.post(ctx, NewTransaction(amount, date, false))
}

func (a *Account) post(ctx context.Context, t Transaction) error {
	if latest, ok := a.latestTransaction(); ok && t.DatedBefore(latest) {
		return &SequenceError{Kind: SequenceBalance, LatestDate: latest.Date()}
	}

	if !t.CheckBalance(a.Balance()) && !t.IsExempt() {
		return &OverdrawError{}
	}

	// Exempt postings (interest, fees) never count toward usage caps and
	// are not subject to them either.
	if !t.IsExempt() {
		if err := a.policy.checkLimits(a.transactions, t); err != nil {
			return err
		}
	}

	a.transactions = append(a.transactions, t)
	if a.store != nil {
		if err := a.store.PersistTransaction(ctx, a.number, t); err != nil {
			a.transactions = a.transactions[:len(a.transactions)-1]
			return fmt.Errorf("persist transaction: %w", err)
		}
	}
	return nil
}

// Balance is the exact decimal sum of all accepted transactions.
func (a *Account) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, t := range a.transactions {
		balance = balance.Add(t.Amount())
	}
	return balance
}

// Transactions returns the account's transactions sorted by date
// ascending. The sort is stable, so same-date transactions keep their
// posting order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DatedBefore(out[j])
	})
	return out
}

// AssessInterestAndFees runs the monthly accrual: it posts an exempt
// interest transaction dated the last day of the latest transaction's
// month, then lets the variant assess fees. It fails with a DateError on
// an account with no history and with a SequenceError if interest was
// already assessed for the month.
func (a *Account) AssessInterestAndFees(ctx context.Context) error {
	if len(a.transactions) == 0 {
		if err := a.assessInterest(ctx, nil); err != nil {
			return err
		}
		return a.policy.assessFees(ctx, a, nil)
	}

	latest, _ := a.latestTransaction()
	if err := a.assessInterest(ctx, &latest); err != nil {
		return err
	}
	return a.policy.assessFees(ctx, a, &latest)
}

func (a *Account) assessInterest(ctx context.Context, latest *Transaction) error {
	if current, ok := a.latestTransaction(); ok {
		// An exempt transaction in the latest month means accrual already
		// ran; running it twice would compound within one calendar month.
		for _, t := range a.transactions {
			if t.IsExempt() && t.InSameMonth(current) {
				return &SequenceError{Kind: SequenceInterest, LatestDate: current.Date()}
			}
		}
	}
	if latest == nil {
		return &DateError{}
	}

	interest := a.Balance().Mul(a.policy.interestRate())
	return a.post(ctx, NewTransaction(interest, latest.LastDayOfMonth(), true))
}

// latestTransaction returns the transaction with the maximum date. On date
// ties the earliest-posted one wins, matching the ordering used everywhere
// else.
func (a *Account) latestTransaction() (Transaction, bool) {
	if len(a.transactions) == 0 {
		return Transaction{}, false
	}
	latest := a.transactions[0]
	for _, t := range a.transactions[1:] {
		if latest.DatedBefore(t) {
			latest = t
		}
	}
	return latest, true
}

// String formats the account as e.g. "Savings#000000001,\tbalance: $50.00".
// The format is stable and snapshot-tested.
func (a *Account) String() string {
	return fmt.Sprintf("%s#%09d,\tbalance: $%s", a.policy.displayName(), a.number, formatAmount(a.Balance()))
}
