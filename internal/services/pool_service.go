package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"saheminvest/internal/database"
	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
)

// fundedInvestmentStatuses are the investment states counted in a deal's funding.
var fundedInvestmentStatuses = []models.InvestmentStatus{
	models.InvestmentStatusActive,
	models.InvestmentStatusCompleted,
}

// poolService computes a deal's funding pool from its investment rows and
// keeps the Deal.CurrentFunding mirror in step with them.
type poolService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewPoolService creates a new PoolServicer.
func NewPoolService(db *gorm.DB, ledger LedgerServicer) PoolServicer {
	return &poolService{db: db, ledger: ledger}
}

// computeFunding sums the funded investments of a deal from source rows.
func computeFunding(db *gorm.DB, dealID string) (money.Money, error) {
	var total money.Money
	err := db.Model(&models.Investment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("deal_id = ? AND status IN ?", dealID, fundedInvestmentStatuses).
		Row().Scan(&total)
	if err != nil {
		return money.Zero, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return total, nil
}

func findDeal(db *gorm.DB, dealID string, lock bool) (*models.Deal, error) {
	q := db
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var deal models.Deal
	if err := q.First(&deal, "id = ?", dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &deal, nil
}

// CurrentFunding returns the deal's funding computed from its investments.
func (s *poolService) CurrentFunding(dealID string) (money.Money, error) {
	if _, err := findDeal(s.db, dealID, false); err != nil {
		return money.Zero, err
	}
	return computeFunding(s.db, dealID)
}

// InvestorShare returns the investor's ACTIVE capital in the deal as a ratio
// of the deal's funding. A deal with no funding yields a zero share.
func (s *poolService) InvestorShare(dealID, investorID string) (decimal.Decimal, error) {
	total, err := s.CurrentFunding(dealID)
	if err != nil {
		return decimal.Zero, err
	}

	var invested money.Money
	if err := s.db.Model(&models.Investment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("deal_id = ? AND investor_id = ? AND status = ?", dealID, investorID, models.InvestmentStatusActive).
		Row().Scan(&invested); err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return money.Ratio(invested, total), nil
}

// Shares loads the deal's ACTIVE investments ordered by id together with
// each one's share of the deal's funding, which is also returned.
func (s *poolService) Shares(tx *gorm.DB, dealID string) ([]InvestmentShare, money.Money, error) {
	total, err := computeFunding(tx, dealID)
	if err != nil {
		return nil, money.Zero, err
	}

	var investments []models.Investment
	if err := tx.Where("deal_id = ? AND status = ?", dealID, models.InvestmentStatusActive).
		Order("id ASC").
		Find(&investments).Error; err != nil {
		return nil, money.Zero, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	shares := make([]InvestmentShare, 0, len(investments))
	for _, inv := range investments {
		shares = append(shares, InvestmentShare{
			Investment: inv,
			Share:      money.Ratio(inv.Amount, total),
		})
	}
	return shares, total, nil
}

// RefreshFunding recomputes the deal's funding and stores it in the mirror column.
func (s *poolService) RefreshFunding(tx *gorm.DB, deal *models.Deal) (money.Money, error) {
	total, err := computeFunding(tx, deal.ID)
	if err != nil {
		return money.Zero, err
	}
	if err := tx.Model(&models.Deal{}).Where("id = ?", deal.ID).Update("current_funding", total).Error; err != nil {
		return money.Zero, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	deal.CurrentFunding = total
	return total, nil
}

// Invest commits an investor's wallet funds to a deal. The deal row is locked
// for the duration so that concurrent commitments cannot overfund it.
func (s *poolService) Invest(actor Actor, dealID string, amount money.Money) (*models.Investment, error) {
	if err := requireRole(actor, models.RoleInvestor); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithField(apperrors.ErrInvalidAmount, "amount", "must be greater than zero")
	}

	var investment *models.Investment
	err := database.RunInTx(s.db, func(tx *gorm.DB) error {
		deal, err := findDeal(tx, dealID, true)
		if err != nil {
			return err
		}
		if !CanReceiveInvestment(deal.Status) {
			return apperrors.ErrDealNotOpen
		}
		if amount.LessThan(deal.MinInvestment) {
			return apperrors.WithField(apperrors.ErrBelowMinimumInvestment, "amount",
				fmt.Sprintf("must be at least %s", deal.MinInvestment))
		}

		funding, err := computeFunding(tx, deal.ID)
		if err != nil {
			return err
		}
		if funding.Add(amount).GreaterThan(deal.FundingGoal) {
			return apperrors.WithField(apperrors.ErrFundingGoalExceeded, "amount",
				fmt.Sprintf("at most %s remains", deal.FundingGoal.Sub(funding)))
		}

		investment = &models.Investment{
			InvestorID:     actor.ID,
			DealID:         deal.ID,
			Amount:         amount,
			Status:         models.InvestmentStatusActive,
			ExpectedReturn: amount.Percent(deal.ExpectedReturn),
		}
		if err := tx.Create(investment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}

		investmentID := investment.ID
		if _, err := s.ledger.Append(tx, LedgerEntry{
			UserID:       actor.ID,
			InvestmentID: &investmentID,
			Type:         models.TransactionTypeInvestment,
			Amount:       amount,
			Description:  fmt.Sprintf("Investment in %s", deal.Title),
		}); err != nil {
			return err
		}

		funding, err = s.RefreshFunding(tx, deal)
		if err != nil {
			return err
		}
		if funding.GreaterThanOrEqual(deal.FundingGoal) {
			return markFunded(tx, deal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return investment, nil
}

// markFunded moves a fully funded deal to FUNDED.
func markFunded(tx *gorm.DB, deal *models.Deal) error {
	if deal.Status != models.DealStatusPublished && deal.Status != models.DealStatusActive {
		return nil
	}
	now := time.Now()
	if err := tx.Model(&models.Deal{}).Where("id = ?", deal.ID).Updates(map[string]interface{}{
		"status":    models.DealStatusFunded,
		"funded_at": now,
	}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	deal.Status = models.DealStatusFunded
	deal.FundedAt = &now
	return nil
}

type investorTotalRow struct {
	InvestorID string
	Amount     money.Money
}

// GetPool summarizes the deal's funding by investor. Administrators and the
// deal's partner see every position; anyone else sees the deal totals and
// their own position only.
func (s *poolService) GetPool(actor Actor, dealID string) (*PoolSummary, error) {
	if actor.ID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	deal, err := findDeal(s.db, dealID, false)
	if err != nil {
		return nil, err
	}
	total, err := computeFunding(s.db, dealID)
	if err != nil {
		return nil, err
	}

	q := s.db.Model(&models.Investment{}).
		Select("investor_id, SUM(amount) AS amount").
		Where("deal_id = ? AND status IN ?", dealID, fundedInvestmentStatuses)
	if !seesWholeDeal(actor, deal) {
		q = q.Where("investor_id = ?", actor.ID)
	}

	var rows []investorTotalRow
	if err := q.Group("investor_id").
		Order("investor_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	positions := make([]PoolPosition, 0, len(rows))
	for _, r := range rows {
		positions = append(positions, PoolPosition{
			InvestorID: r.InvestorID,
			Amount:     r.Amount,
			Share:      money.Ratio(r.Amount, total),
		})
	}

	remaining := deal.FundingGoal.Sub(total)
	if remaining.IsNegative() {
		remaining = money.Zero
	}

	return &PoolSummary{
		DealID:         deal.ID,
		Status:         string(deal.Status),
		FundingGoal:    deal.FundingGoal,
		CurrentFunding: total,
		Remaining:      remaining,
		Positions:      positions,
	}, nil
}

// ReconcileDeal compares the cached funding mirror with the investments.
func (s *poolService) ReconcileDeal(dealID string) (*FundingReconciliation, error) {
	deal, err := findDeal(s.db, dealID, false)
	if err != nil {
		return nil, err
	}
	computed, err := computeFunding(s.db, dealID)
	if err != nil {
		return nil, err
	}
	return &FundingReconciliation{
		DealID:      deal.ID,
		Cached:      deal.CurrentFunding,
		Computed:    computed,
		Discrepancy: deal.CurrentFunding.Sub(computed),
	}, nil
}
