package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/handlers/v1/account"
	"github.com/carson-networks/bank-server/internal/handlers/v1/accrual"
	"github.com/carson-networks/bank-server/internal/handlers/v1/status"
	"github.com/carson-networks/bank-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("Bank Server API", "1.0.0"))
	humaAPI.UseMiddleware(r.loggingMiddleware)

	account.NewOpenAccountHandler(r.Operator).Register(humaAPI)
	account.NewListAccountsHandler(r.Operator).Register(humaAPI)
	account.NewGetAccountHandler(r.Operator).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Operator).Register(humaAPI)
	accrual.NewAssessAccrualHandler(r.Operator).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// loggingMiddleware attaches a LogData collector to every request so
// handlers can record timings, then emits one summary line per request.
func (r *Rest) loggingMiddleware(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	endTimer := logData.AddTiming("totalMs")

	next(huma.WithValue(ctx, logging.LogDataContextKey, logData))

	endTimer()
	logData.Log().WithFields(logrus.Fields{
		"operation": ctx.Operation().OperationID,
		"path":      ctx.URL().Path,
		"status":    ctx.Status(),
	}).Info("HttpServer.request complete")
}
