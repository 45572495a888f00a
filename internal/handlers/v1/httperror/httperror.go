// Package httperror maps ledger domain errors onto HTTP status codes so
// every handler reports rejections the same way.
package httperror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

// FromDomain converts an action or ledger error into a huma error.
// Unrecognized errors become a 500 with the given fallback message.
func FromDomain(err error, fallback string) error {
	var overdraw *ledger.OverdrawError
	var seqErr *ledger.SequenceError
	var limitErr *ledger.LimitError
	var dateErr *ledger.DateError

	switch {
	case errors.Is(err, actions.ErrAccountNotFound):
		return huma.NewError(http.StatusNotFound, "account not found", err)
	case errors.As(err, &overdraw):
		return huma.NewError(http.StatusConflict, err.Error(), err)
	case errors.As(err, &seqErr):
		return huma.NewError(http.StatusConflict, err.Error(), err)
	case errors.As(err, &dateErr):
		return huma.NewError(http.StatusConflict, err.Error(), err)
	case errors.As(err, &limitErr):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error(), err)
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
