package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"Accounts in creation order"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	Operator actionProcessor
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(op actionProcessor) *ListAccountsHandler {
	return &ListAccountsHandler{Operator: op}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns every account in the order it was opened.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *struct{}) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.ListAccounts{}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to list accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(action.Accounts))
	}

	resp := ListAccountsResponseBody{
		Accounts: make([]Account, len(action.Accounts)),
	}
	for i, view := range action.Accounts {
		resp.Accounts[i] = fromView(view)
	}

	return &ListAccountsOutput{Body: resp}, nil
}
