package transaction

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-server/internal/ledger"
)

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	api, d := newTestAPI(t)
	openAccount(t, d, ledger.KindSavings)

	resp := api.Get("/v1/accounts/1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
}

func TestHTTP_ListTransactions_DateOrder(t *testing.T) {
	api, d := newTestAPI(t)
	openAccount(t, d, ledger.KindSavings)

	require.Equal(t, http.StatusCreated, api.Post("/v1/accounts/1/transactions", CreateTransactionBody{
		Amount: "1000.00",
		Date:   "2024-01-05",
	}).Code)
	require.Equal(t, http.StatusCreated, api.Post("/v1/accounts/1/transactions", CreateTransactionBody{
		Amount: "-50.00",
		Date:   "2024-01-05",
	}).Code)
	require.Equal(t, http.StatusCreated, api.Post("/v1/accounts/1/transactions", CreateTransactionBody{
		Amount: "25.00",
		Date:   "2024-01-10",
	}).Code)

	resp := api.Get("/v1/accounts/1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 3)

	// Same-date transactions keep posting order.
	assert.Equal(t, "1000", body.Transactions[0].Amount)
	assert.Equal(t, "2024-01-05, $1,000.00", body.Transactions[0].Display)
	assert.Equal(t, "-50", body.Transactions[1].Amount)
	assert.Equal(t, "25", body.Transactions[2].Amount)
	assert.Equal(t, "2024-01-10", body.Transactions[2].Date)
	assert.False(t, body.Transactions[0].Exempt)
}

func TestHTTP_ListTransactions_AccountNotFound(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/v1/accounts/3/transactions")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
