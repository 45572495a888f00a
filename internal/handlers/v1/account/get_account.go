package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	Number int `path:"number" minimum:"1" doc:"Account number"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// GetAccountHandler handles GET /v1/accounts/{number}.
type GetAccountHandler struct {
	Operator actionProcessor
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(op actionProcessor) *GetAccountHandler {
	return &GetAccountHandler{Operator: op}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{number}",
		Summary:     "Get an account",
		Description: "Returns a single account with its current balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.GetAccount{AccountNumber: input.Number}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getAccountMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to get account")
	}

	if logData != nil {
		logData.AddData("accountNumber", action.Account.Number)
	}

	return &GetAccountOutput{Body: fromView(action.Account)}, nil
}
