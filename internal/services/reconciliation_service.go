package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/logger"
	"saheminvest/internal/metrics"
	"saheminvest/internal/models"
)

// reconciliationService audits every cached total against its source records.
type reconciliationService struct {
	db     *gorm.DB
	ledger LedgerServicer
	pool   PoolServicer
}

// NewReconciliationService creates a new ReconciliationServicer.
func NewReconciliationService(db *gorm.DB, ledger LedgerServicer, pool PoolServicer) ReconciliationServicer {
	return &reconciliationService{db: db, ledger: ledger, pool: pool}
}

// Run replays every wallet and recomputes every deal's funding. It reports
// mismatches and never repairs them: a mismatch is a defect to investigate,
// not a value to overwrite.
func (s *reconciliationService) Run() (*ReconciliationReport, error) {
	log := logger.Named("reconcile")
	report := &ReconciliationReport{
		Wallets: []WalletReconciliation{},
		Deals:   []FundingReconciliation{},
		RanAt:   time.Now(),
	}

	var userIDs []string
	if err := s.db.Model(&models.User{}).Order("id").Pluck("id", &userIDs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	for _, id := range userIDs {
		wallet, err := s.ledger.Reconcile(id)
		if err != nil {
			return nil, err
		}
		report.CheckedUsers++
		if !wallet.IsBalanced() {
			log.Warnw("wallet does not match ledger",
				"user_id", id,
				"balance_discrepancy", wallet.BalanceDiscrepancy,
				"invested_discrepancy", wallet.InvestedDiscrepancy,
				"returns_discrepancy", wallet.ReturnsDiscrepancy)
			report.Wallets = append(report.Wallets, *wallet)
		}
	}

	var dealIDs []string
	if err := s.db.Model(&models.Deal{}).Order("id").Pluck("id", &dealIDs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	for _, id := range dealIDs {
		funding, err := s.pool.ReconcileDeal(id)
		if err != nil {
			return nil, err
		}
		report.CheckedDeals++
		if !funding.Discrepancy.IsZero() {
			log.Warnw("deal funding does not match investments",
				"deal_id", id, "cached", funding.Cached, "computed", funding.Computed)
			report.Deals = append(report.Deals, *funding)
		}
	}

	metrics.ReconciliationMismatches(report.Mismatches())
	log.Infow("reconciliation finished",
		"users", report.CheckedUsers, "deals", report.CheckedDeals, "mismatches", report.Mismatches())
	return report, nil
}
