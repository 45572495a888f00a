package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// OpenAccountInput is the Huma input for opening an account.
type OpenAccountInput struct {
	Body OpenAccountBody
}

// OpenAccountBody is the request body fields for opening an account.
type OpenAccountBody struct {
	Type string `json:"type" enum:"savings,checking" doc:"Account type"`
}

// OpenAccountResponse is the response body for opening an account.
type OpenAccountResponse struct {
	AccountNumber int `json:"accountNumber" doc:"Number assigned to the new account"`
}

// OpenAccountOutput is the response for opening an account.
type OpenAccountOutput struct {
	Status int
	Body   OpenAccountResponse
}

// actionProcessor is the interface for submitting actions to the bank
// worker.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// OpenAccountHandler handles POST /v1/accounts.
type OpenAccountHandler struct {
	Operator actionProcessor
}

// NewOpenAccountHandler creates a new OpenAccountHandler.
func NewOpenAccountHandler(op actionProcessor) *OpenAccountHandler {
	return &OpenAccountHandler{Operator: op}
}

// Register registers the open account endpoint with the Huma API.
func (h *OpenAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "open-account",
		Method:      http.MethodPost,
		Path:        "/v1/accounts",
		Summary:     "Open an account",
		Description: "Opens a new savings or checking account and assigns it the next sequential account number.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *OpenAccountHandler) handle(ctx context.Context, input *OpenAccountInput) (*OpenAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.OpenAccount{Kind: ledger.Kind(input.Body.Type)}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("openAccountMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to open account")
	}
	if !action.Created {
		return nil, huma.NewError(http.StatusBadRequest, "unknown account type", nil)
	}

	if logData != nil {
		logData.AddData("accountNumber", action.Account.Number)
	}

	return &OpenAccountOutput{
		Status: http.StatusCreated,
		Body:   OpenAccountResponse{AccountNumber: action.Account.Number},
	}, nil
}
