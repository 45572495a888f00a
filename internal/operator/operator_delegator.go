package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// OperatorDelegator manages the queue, starts/stops the Operator (worker),
// and enqueues items. Exactly one worker drains the queue: the bank is a
// single-mutator aggregate, so funneling every action through one
// goroutine serializes all access without locks.
type OperatorDelegator struct {
	bank     *ledger.Bank
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(bank *ledger.Bank) *OperatorDelegator {
	return &OperatorDelegator{
		bank:  bank,
		queue: make(chan ActionItem, 1000),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.bank, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
