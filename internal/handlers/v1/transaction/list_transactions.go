package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// ListTransactionsInput is the Huma input for listing an account's
// transactions.
type ListTransactionsInput struct {
	Number int `path:"number" minimum:"1" doc:"Account number"`
}

// ListTransactionsResponseBody is the response body for listing
// transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions in date order, oldest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ListTransactionsHandler handles GET /v1/accounts/{number}/transactions.
type ListTransactionsHandler struct {
	Operator actionProcessor
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(op actionProcessor) *ListTransactionsHandler {
	return &ListTransactionsHandler{Operator: op}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{number}/transactions",
		Summary:     "List transactions",
		Description: "Returns an account's transactions sorted by date, oldest first. Same-date transactions keep posting order.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.ListTransactions{AccountNumber: input.Number}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(action.Transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(action.Transactions)),
	}
	for i, view := range action.Transactions {
		resp.Transactions[i] = fromView(view)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
