package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/api"
	"github.com/carson-networks/bank-server/internal/config"
	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/operator"
	"github.com/carson-networks/bank-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("bank-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	var bank *ledger.Bank
	if envConfig.LedgerBackend == "memory" {
		bank, err = storage.NewMemoryStore().LoadBank(context.Background())
	} else {
		dbStorage := storage.NewStorage(envConfig)
		bank, err = dbStorage.Ledger.LoadBank(context.Background())
	}
	if err != nil {
		logrus.WithError(err).Fatal("storage.LoadBank")
		return
	}

	delegator := operator.NewOperatorDelegator(bank)
	delegator.Start()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
