package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// ErrAccountNotFound is returned by actions addressing an account number
// the bank does not know.
var ErrAccountNotFound = errors.New("account not found")

type IAction interface {
	Perform(ctx context.Context, bank *ledger.Bank) error
}
