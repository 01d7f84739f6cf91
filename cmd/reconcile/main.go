// Command reconcile replays every wallet ledger and recomputes every deal's
// funding, logging each mismatch. It exits non-zero when any are found so a
// scheduler can alert on it.
package main

import (
	"fmt"
	"os"

	"saheminvest/internal/config"
	"saheminvest/internal/database"
	"saheminvest/internal/logger"
	"saheminvest/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	mismatches, err := run()
	if err != nil {
		logger.Get().Fatalf("Reconciliation error: %v", err)
	}
	if mismatches > 0 {
		logger.Sync()
		os.Exit(2)
	}
}

func run() (int, error) {
	log := logger.Named("reconcile")

	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return 0, fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	db := dbManager.DB()
	ledger := services.NewLedgerService(db)
	pool := services.NewPoolService(db, ledger)

	report, err := services.NewReconciliationService(db, ledger, pool).Run()
	if err != nil {
		return 0, err
	}

	return report.Mismatches(), nil
}
