package accrual

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/operator"
	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/storage"
)

func newTestAPI(t *testing.T) (humatest.TestAPI, *operator.OperatorDelegator) {
	t.Helper()
	bank := ledger.NewBank(storage.NewMemoryStore())
	d := operator.NewOperatorDelegator(bank)
	d.Start()
	t.Cleanup(d.Stop)

	_, api := humatest.New(t)
	NewAssessAccrualHandler(d).Register(api)
	return api, d
}

func seedAccount(t *testing.T, d *operator.OperatorDelegator, kind ledger.Kind, amount string) {
	t.Helper()
	ctx := context.Background()

	open := &actions.OpenAccount{Kind: kind}
	require.NoError(t, d.Process(ctx, open))
	require.True(t, open.Created)

	if amount != "" {
		require.NoError(t, d.Process(ctx, &actions.PostTransaction{
			AccountNumber: open.Account.Number,
			Amount:        decimal.RequireFromString(amount),
			Date:          time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		}))
	}
}

func TestHTTP_AssessAccrual_Savings(t *testing.T) {
	api, d := newTestAPI(t)
	seedAccount(t, d, ledger.KindSavings, "950.00")

	resp := api.Post("/v1/accounts/1/accruals")

	assert.Equal(t, http.StatusNoContent, resp.Code)

	// 950 * 0.0033 interest, dated the end of January.
	get := &actions.GetAccount{AccountNumber: 1}
	require.NoError(t, d.Process(context.Background(), get))
	assert.True(t, get.Account.Balance.Equal(decimal.RequireFromString("953.135")),
		"balance = %s", get.Account.Balance)
}

func TestHTTP_AssessAccrual_CheckingLowBalanceFee(t *testing.T) {
	api, d := newTestAPI(t)
	seedAccount(t, d, ledger.KindChecking, "80.00")

	resp := api.Post("/v1/accounts/1/accruals")

	assert.Equal(t, http.StatusNoContent, resp.Code)

	// 80 * 0.0008 interest plus the -5.75 low balance fee.
	get := &actions.GetAccount{AccountNumber: 1}
	require.NoError(t, d.Process(context.Background(), get))
	assert.True(t, get.Account.Balance.Equal(decimal.RequireFromString("74.314")),
		"balance = %s", get.Account.Balance)
}

func TestHTTP_AssessAccrual_EmptyAccount(t *testing.T) {
	api, d := newTestAPI(t)
	seedAccount(t, d, ledger.KindSavings, "")

	resp := api.Post("/v1/accounts/1/accruals")

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_AssessAccrual_TwiceInOneMonth(t *testing.T) {
	api, d := newTestAPI(t)
	seedAccount(t, d, ledger.KindSavings, "950.00")

	require.Equal(t, http.StatusNoContent, api.Post("/v1/accounts/1/accruals").Code)
	resp := api.Post("/v1/accounts/1/accruals")

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_AssessAccrual_AccountNotFound(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Post("/v1/accounts/5/accruals")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
