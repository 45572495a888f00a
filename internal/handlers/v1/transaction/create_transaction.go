package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// CreateTransactionInput is the Huma input for posting a transaction.
type CreateTransactionInput struct {
	Number int `path:"number" minimum:"1" doc:"Account number"`
	Body   CreateTransactionBody
}

// CreateTransactionBody is the request body fields for posting a
// transaction.
type CreateTransactionBody struct {
	Amount string `json:"amount" minLength:"1" doc:"Signed decimal amount (e.g. '50.00' or '-12.34')"`
	Date   string `json:"date" minLength:"1" doc:"Posting date, YYYY-MM-DD"`
}

// CreateTransactionResponse is the response body for posting a
// transaction.
type CreateTransactionResponse struct {
	AccountNumber int    `json:"accountNumber" doc:"Account the transaction was posted to"`
	Balance       string `json:"balance" doc:"Balance after the posting"`
}

// CreateTransactionOutput is the response for posting a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/accounts/{number}/transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{number}/transactions",
		Summary:     "Post a transaction",
		Description: "Posts a dated deposit or withdrawal to an account, subject to the account's overdraft and activity rules.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (decimal.Decimal, time.Time, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date, err := time.Parse(time.DateOnly, input.Body.Date)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	return amount, date, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, date, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.PostTransaction{
		AccountNumber: input.Number,
		Amount:        amount,
		Date:          date,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to post transaction")
	}

	if logData != nil {
		logData.AddData("accountNumber", action.Account.Number)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			AccountNumber: action.Account.Number,
			Balance:       action.Account.Balance.String(),
		},
	}, nil
}
