package ledger

import (
	"fmt"
	"time"
)

// OverdrawError is returned when a non-exempt transaction would drive the
// account balance negative.
type OverdrawError struct{}

func (e *OverdrawError) Error() string {
	return "transaction would overdraw the account"
}

// SequenceKind distinguishes the two ways a posting can be out of sequence.
type SequenceKind string

const (
	// SequenceBalance: a new transaction is dated before the latest one.
	SequenceBalance SequenceKind = "balance"
	// SequenceInterest: interest and fees were already assessed this month.
	SequenceInterest SequenceKind = "interest"
)

// SequenceError is returned when a transaction occurs out of sequence.
// LatestDate is the date of the latest transaction on the account; it is
// zero when the account has no transactions.
type SequenceError struct {
	Kind       SequenceKind
	LatestDate time.Time
}

func (e *SequenceError) Error() string {
	if e.Kind == SequenceInterest {
		return fmt.Sprintf("interest and fees already assessed for %s", e.LatestDate.Format("January 2006"))
	}
	if e.LatestDate.IsZero() {
		return "transaction out of sequence"
	}
	return fmt.Sprintf("transactions must be dated on or after %s", e.LatestDate.Format(time.DateOnly))
}

// LimitKind distinguishes the savings usage caps.
type LimitKind string

const (
	LimitDay   LimitKind = "day"
	LimitMonth LimitKind = "month"
)

// LimitError is returned when a posting exceeds a per-day or per-month
// transaction cap.
type LimitError struct {
	Kind  LimitKind
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("no more than %d transactions allowed per %s", e.Limit, e.Kind)
}

// DateError is returned when interest is assessed on an account that has
// never had a transaction.
type DateError struct{}

func (e *DateError) Error() string {
	return "cannot assess interest on an account with no transactions"
}
