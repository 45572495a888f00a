// Package accrual exposes the monthly interest and fee assessment over
// HTTP.
package accrual

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// AssessAccrualInput is the Huma input for running an accrual.
type AssessAccrualInput struct {
	Number int `path:"number" minimum:"1" doc:"Account number"`
}

// AssessAccrualOutput is the response for running an accrual.
type AssessAccrualOutput struct {
	Status int
}

// actionProcessor is the interface for submitting actions to the bank
// worker.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// AssessAccrualHandler handles POST /v1/accounts/{number}/accruals.
type AssessAccrualHandler struct {
	Operator actionProcessor
}

// NewAssessAccrualHandler creates a new AssessAccrualHandler.
func NewAssessAccrualHandler(op actionProcessor) *AssessAccrualHandler {
	return &AssessAccrualHandler{Operator: op}
}

// Register registers the assess accrual endpoint with the Huma API.
func (h *AssessAccrualHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "assess-accrual",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{number}/accruals",
		Summary:     "Assess interest and fees",
		Description: "Posts the account's monthly interest, and any low-balance fee, dated the last day of its latest activity month. At most one assessment per month.",
		Tags:        []string{"Accruals"},
	}, h.handle)
}

func (h *AssessAccrualHandler) handle(ctx context.Context, input *AssessAccrualInput) (*AssessAccrualOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.AssessAccrual{AccountNumber: input.Number}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("assessAccrualMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to assess accrual")
	}

	if logData != nil {
		logData.AddData("accountNumber", action.Account.Number)
	}

	return &AssessAccrualOutput{Status: http.StatusNoContent}, nil
}
