package operator

import (
	"context"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// Operator is the worker that processes items from the queue against the
// bank. The ledger persists each accepted mutation itself, so processing
// an item is just performing the action and reporting the outcome.
type Operator struct {
	bank  *ledger.Bank
	queue chan ActionItem
}

func NewOperator(bank *ledger.Bank, queue chan ActionItem) *Operator {
	return &Operator{
		bank:  bank,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.bank)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
