package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of a signed amount posted to an
// account on a calendar date. Exempt transactions (interest and fees)
// bypass overdraft and usage-limit checks but still obey date ordering.
type Transaction struct {
	amount decimal.Decimal
	date   time.Time
	exempt bool
}

// NewTransaction creates a transaction. No validation happens here; all
// acceptance rules belong to the posting account.
func NewTransaction(amount decimal.Decimal, date time.Time, exempt bool) Transaction {
	return Transaction{
		amount: amount,
		date:   dateOnly(date),
		exempt: exempt,
	}
}

// Amount returns the signed transaction amount.
func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Date returns the transaction date, normalized to midnight UTC.
func (t Transaction) Date() time.Time {
	return t.date
}

// IsExempt reports whether the transaction is exempt from account limits.
func (t Transaction) IsExempt() bool {
	return t.exempt
}

// CheckBalance reports whether the transaction can be covered by the given
// prior balance: deposits always pass, withdrawals must not exceed it.
func (t Transaction) CheckBalance(balance decimal.Decimal) bool {
	return t.amount.Sign() >= 0 || balance.GreaterThanOrEqual(t.amount.Abs())
}

// InSameDay reports whether both transactions fall on the same calendar day.
func (t Transaction) InSameDay(other Transaction) bool {
	return t.date.Equal(other.date)
}

// InSameMonth reports whether both transactions fall in the same month and year.
func (t Transaction) InSameMonth(other Transaction) bool {
	return t.date.Year() == other.date.Year() && t.date.Month() == other.date.Month()
}

// DatedBefore reports whether this transaction is dated strictly before the
// other. Ordering is by date only; two transactions on the same date are
// not comparable, and deliberately not equal in any other sense.
func (t Transaction) DatedBefore(other Transaction) bool {
	return t.date.Before(other.date)
}

// LastDayOfMonth returns the last calendar day of this transaction's month.
func (t Transaction) LastDayOfMonth() time.Time {
	// First of the next month minus one day handles every month length,
	// including the December year rollover.
	firstOfNext := time.Date(t.date.Year(), t.date.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

// String formats the transaction as e.g. "2022-09-15, $50.00".
func (t Transaction) String() string {
	return t.date.Format(time.DateOnly) + ", $" + formatAmount(t.amount)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
