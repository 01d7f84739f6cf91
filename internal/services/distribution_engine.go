package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/logger"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
)

// cent is the largest rounding error a single prorated amount can carry.
var cent = money.MustParse("0.01")

// distributionEngine turns an approved distribution request into ledger
// entries, profit distribution records and pool updates.
type distributionEngine struct {
	ledger LedgerServicer
	pool   PoolServicer
}

// NewDistributionEngine creates a new DistributionEngine.
func NewDistributionEngine(ledger LedgerServicer, pool PoolServicer) DistributionEngine {
	return &distributionEngine{ledger: ledger, pool: pool}
}

// Apply pays out req to the deal's investors inside tx. Capital and profit
// are prorated separately by investment share, in investment id order, with
// each rounding remainder assigned to the last investment. Every amount paid
// is checked against the request before anything is returned; on any error the
// caller must roll tx back.
func (e *distributionEngine) Apply(tx *gorm.DB, req *models.DistributionRequest) (*DistributionResult, error) {
	log := logger.Named("distribution").With("request_id", req.ID, "deal_id", req.DealID)

	if req.Status != models.DistributionRequestApproved {
		return nil, apperrors.ErrRequestNotApproved
	}
	if req.AppliedAt != nil {
		return nil, apperrors.ErrRequestAlreadyApplied
	}
	var existing int64
	if err := tx.Model(&models.ProfitDistribution{}).
		Where("distribution_request_id = ?", req.ID).
		Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if existing > 0 {
		return nil, apperrors.ErrRequestAlreadyApplied
	}

	deal, err := findDeal(tx, req.DealID, true)
	if err != nil {
		return nil, err
	}
	if !CanReceiveDistribution(deal.Status) {
		return nil, apperrors.ErrDealNotDistributable
	}

	if !req.TotalAmount.IsPositive() {
		return nil, apperrors.WithField(apperrors.ErrInvalidAmount, "total_amount", "must be greater than zero")
	}
	net := req.ComputeNetToInvestors()
	if net.IsNegative() {
		log.Errorw("net distribution is negative",
			"total", req.TotalAmount, "reserved", req.ReservedAmount, "commission", req.SahemInvestAmount)
		return nil, apperrors.ErrNegativeNetDistribution
	}
	capital := req.EstimatedReturnCapital
	profit := net.Sub(capital)
	if capital.IsNegative() || profit.IsNegative() {
		log.Errorw("withheld amounts exceed the distributable profit",
			"net", net, "capital", capital)
		return nil, apperrors.WithMessage(apperrors.ErrNegativeNetDistribution,
			"Reserve and commission exceed the profit portion of the distribution")
	}

	shares, funding, err := e.pool.Shares(tx, deal.ID)
	if err != nil {
		return nil, err
	}
	if funding.IsZero() || len(shares) == 0 {
		return nil, apperrors.ErrEmptyPool
	}

	capitalSplit, err := prorate(capital, shares)
	if err != nil {
		log.Errorw("capital does not prorate across the pool", "capital", capital, "funding", funding, "error", err)
		return nil, err
	}
	profitSplit, err := prorate(profit, shares)
	if err != nil {
		log.Errorw("profit does not prorate across the pool", "profit", profit, "funding", funding, "error", err)
		return nil, err
	}

	now := time.Now()
	final := req.DistributionType == models.DistributionTypeFinal
	result := &DistributionResult{
		Request:             req,
		Deal:                deal,
		Investments:         make([]models.Investment, 0, len(shares)),
		ProfitDistributions: make([]models.ProfitDistribution, 0, len(shares)),
	}

	paid := money.Zero
	for i, share := range shares {
		inv := share.Investment
		investorCapital, investorProfit := capitalSplit[i], profitSplit[i]

		entries, err := e.creditInvestor(tx, req, deal, &inv, investorCapital, investorProfit)
		if err != nil {
			return nil, err
		}
		result.Transactions = append(result.Transactions, entries...)

		record := models.ProfitDistribution{
			DistributionRequestID: req.ID,
			InvestmentID:          inv.ID,
			DealID:                deal.ID,
			InvestorID:            inv.InvestorID,
			Amount:                investorCapital.Add(investorProfit),
			ProfitAmount:          investorProfit,
			CapitalAmount:         investorCapital,
			ProfitRate:            money.PercentOf(investorProfit, inv.Amount),
			InvestmentShare:       share.Share,
			ProfitPeriod:          req.DistributionType,
			DistributionDate:      now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, err)
		}
		result.ProfitDistributions = append(result.ProfitDistributions, record)

		updates := map[string]interface{}{"actual_return": inv.ActualReturn.Add(investorProfit)}
		if final {
			updates["status"] = models.InvestmentStatusCompleted
			updates["completed_at"] = now
		}
		if err := tx.Model(&models.Investment{}).Where("id = ?", inv.ID).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, err)
		}
		inv.ActualReturn = inv.ActualReturn.Add(investorProfit)
		if final {
			inv.Status = models.InvestmentStatusCompleted
			inv.CompletedAt = &now
		}
		result.Investments = append(result.Investments, inv)

		paid = paid.Add(record.Amount)
	}

	if !paid.Equal(net) {
		log.Errorw("payouts do not add up to the net distribution", "paid", paid, "net", net)
		return nil, apperrors.ErrDistributionImbalance
	}

	applied := tx.Model(&models.DistributionRequest{}).
		Where("id = ? AND applied_at IS NULL", req.ID).
		Updates(map[string]interface{}{"applied_at": now, "net_to_investors": net})
	if applied.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, applied.Error)
	}
	if applied.RowsAffected == 0 {
		return nil, apperrors.ErrRequestAlreadyApplied
	}
	req.AppliedAt = &now
	req.NetToInvestors = net

	if err := e.settleDeal(tx, deal, funding, final, now); err != nil {
		return nil, err
	}

	log.Infow("distribution applied",
		"type", req.DistributionType,
		"investments", len(shares),
		"net", net,
		"capital", capital,
		"profit", profit,
		"deal_actual_return", deal.ActualReturn)

	return result, nil
}

// creditInvestor appends the RETURN and PROFIT_DISTRIBUTION entries for one
// investment. Zero amounts produce no entry.
func (e *distributionEngine) creditInvestor(tx *gorm.DB, req *models.DistributionRequest, deal *models.Deal, inv *models.Investment, capital, profit money.Money) ([]models.Transaction, error) {
	var entries []models.Transaction
	investmentID, requestID := inv.ID, req.ID

	if capital.IsPositive() {
		entry, err := e.ledger.Append(tx, LedgerEntry{
			UserID:                inv.InvestorID,
			InvestmentID:          &investmentID,
			DistributionRequestID: &requestID,
			Type:                  models.TransactionTypeReturn,
			Amount:                capital,
			Description:           fmt.Sprintf("Capital return from %s", deal.Title),
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if profit.IsPositive() {
		entry, err := e.ledger.Append(tx, LedgerEntry{
			UserID:                inv.InvestorID,
			InvestmentID:          &investmentID,
			DistributionRequestID: &requestID,
			Type:                  models.TransactionTypeProfitDistribution,
			Amount:                profit,
			Description:           fmt.Sprintf("%s profit distribution from %s", req.DistributionType, deal.Title),
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// settleDeal refreshes the deal's return from every profit paid on it so far
// and completes the deal on a FINAL distribution.
func (e *distributionEngine) settleDeal(tx *gorm.DB, deal *models.Deal, funding money.Money, final bool, now time.Time) error {
	var cumulativeProfit money.Money
	if err := tx.Model(&models.ProfitDistribution{}).
		Select("COALESCE(SUM(profit_amount), 0)").
		Where("deal_id = ?", deal.ID).
		Row().Scan(&cumulativeProfit); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	actualReturn := money.PercentOf(cumulativeProfit, funding)
	updates := map[string]interface{}{
		"actual_return":   actualReturn,
		"current_funding": funding,
	}
	if final {
		updates["status"] = models.DealStatusCompleted
		updates["completed_at"] = now
	}
	if err := tx.Model(&models.Deal{}).Where("id = ?", deal.ID).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	deal.ActualReturn = actualReturn
	deal.CurrentFunding = funding
	if final {
		deal.Status = models.DealStatusCompleted
		deal.CompletedAt = &now
	}
	return nil
}

// prorate splits amount across shares. Each part is truncated to cents, so
// the parts never add up to more than amount and the leftover is at most one
// cent per share; the leftover goes to the last share. Shares that do not add
// up to one leave a larger leftover, which is reported rather than absorbed.
func prorate(amount money.Money, shares []InvestmentShare) ([]money.Money, error) {
	parts := make([]money.Money, len(shares))
	allocated := money.Zero
	for i, s := range shares {
		parts[i] = amount.MulTruncate(s.Share)
		allocated = allocated.Add(parts[i])
	}

	remainder := amount.Sub(allocated)
	tolerance := cent.Mul(decimal.NewFromInt(int64(len(shares))))
	if remainder.IsNegative() || remainder.GreaterThan(tolerance) {
		return nil, apperrors.WithMessage(apperrors.ErrDistributionImbalance,
			fmt.Sprintf("Rounding remainder %s is outside [0, %s]", remainder, tolerance))
	}

	last := len(parts) - 1
	parts[last] = parts[last].Add(remainder)
	return parts, nil
}
