package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"saheminvest/internal/database"
	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/logger"
	"saheminvest/internal/metrics"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/pagination"
)

var hundredPercent = decimal.NewFromInt(100)

// distributionRequestService runs the partner proposal and administrator
// review workflow. Approval hands the request to the distribution engine in
// the same transaction.
type distributionRequestService struct {
	db             *gorm.DB
	engine         DistributionEngine
	notifier       Notifier
	currencySymbol string
}

// NewDistributionRequestService creates a new DistributionRequestServicer.
func NewDistributionRequestService(db *gorm.DB, engine DistributionEngine, notifier Notifier, currencySymbol string) DistributionRequestServicer {
	if currencySymbol == "" {
		currencySymbol = "$"
	}
	return &distributionRequestService{
		db:             db,
		engine:         engine,
		notifier:       notifier,
		currencySymbol: currencySymbol,
	}
}

func validatePercent(field string, p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(hundredPercent) {
		return apperrors.WithField(apperrors.ErrInvalidPercent, field, "must be between 0 and 100")
	}
	return nil
}

func validateNonNegative(field string, m money.Money) error {
	if m.IsNegative() {
		return apperrors.WithField(apperrors.ErrInvalidAmount, field, "must not be negative")
	}
	return nil
}

// buildDistributionRequest validates input and derives the withheld amounts.
// The commission and the reserve both come out of the profit portion; the
// capital portion is always paid in full.
func buildDistributionRequest(input CreateDistributionRequestInput, funding money.Money) (*models.DistributionRequest, error) {
	switch input.DistributionType {
	case models.DistributionTypePartial, models.DistributionTypeFinal:
	default:
		return nil, apperrors.WithField(apperrors.ErrInvalidInput, "distribution_type", "must be PARTIAL or FINAL")
	}

	if !input.TotalAmount.IsPositive() {
		return nil, apperrors.WithField(apperrors.ErrInvalidAmount, "total_amount", "must be greater than zero")
	}
	if err := validateNonNegative("estimated_return_capital", input.EstimatedReturnCapital); err != nil {
		return nil, err
	}
	if err := validateNonNegative("estimated_profit", input.EstimatedProfit); err != nil {
		return nil, err
	}
	if !input.TotalAmount.Equal(input.EstimatedReturnCapital.Add(input.EstimatedProfit)) {
		return nil, apperrors.WithField(apperrors.ErrAmountMismatch, "total_amount",
			fmt.Sprintf("expected %s", input.EstimatedReturnCapital.Add(input.EstimatedProfit)))
	}

	if err := validatePercent("sahem_invest_percent", input.SahemInvestPercent); err != nil {
		return nil, err
	}
	if err := validatePercent("reserved_gain_percent", input.ReservedGainPercent); err != nil {
		return nil, err
	}

	profit := input.EstimatedProfit

	maxCommission := profit.Percent(input.SahemInvestPercent)
	commission := maxCommission
	if input.SahemInvestAmount != nil {
		commission = *input.SahemInvestAmount
		if err := validateNonNegative("sahem_invest_amount", commission); err != nil {
			return nil, err
		}
		if commission.GreaterThan(maxCommission) {
			return nil, apperrors.WithField(apperrors.ErrCommissionExceedsProfit, "sahem_invest_amount",
				fmt.Sprintf("must not exceed %s", maxCommission))
		}
	}

	reserved := money.Zero
	reservedPercent := input.ReservedGainPercent
	if input.DistributionType == models.DistributionTypeFinal {
		if reservedPercent.IsPositive() || (input.ReservedAmount != nil && !input.ReservedAmount.IsZero()) {
			return nil, apperrors.WithField(apperrors.ErrInvalidInput, "reserved_amount",
				"final distributions cannot withhold a reserve")
		}
	} else {
		reserved = profit.Percent(reservedPercent)
		if input.ReservedAmount != nil {
			reserved = *input.ReservedAmount
			if err := validateNonNegative("reserved_amount", reserved); err != nil {
				return nil, err
			}
		}
	}

	if reserved.Add(commission).GreaterThan(profit) {
		return nil, apperrors.WithField(apperrors.ErrDeductionsExceedTotal, "reserved_amount",
			fmt.Sprintf("reserve plus commission must not exceed the profit of %s", profit))
	}

	gainPercent := money.PercentOf(profit, funding)
	if input.EstimatedGainPercent != nil {
		if input.EstimatedGainPercent.IsNegative() {
			return nil, apperrors.WithField(apperrors.ErrInvalidPercent, "estimated_gain_percent", "must not be negative")
		}
		gainPercent = input.EstimatedGainPercent.Round(2)
	}

	req := &models.DistributionRequest{
		DistributionType:       input.DistributionType,
		TotalAmount:            input.TotalAmount,
		EstimatedReturnCapital: input.EstimatedReturnCapital,
		EstimatedProfit:        profit,
		EstimatedGainPercent:   gainPercent,
		ReservedGainPercent:    reservedPercent.Round(2),
		ReservedAmount:         reserved,
		SahemInvestPercent:     input.SahemInvestPercent.Round(2),
		SahemInvestAmount:      commission,
		Status:                 models.DistributionRequestPending,
		Description:            strings.TrimSpace(input.Description),
	}
	req.NetToInvestors = req.ComputeNetToInvestors()
	return req, nil
}

// Create records a partner's distribution request against a deal. Only one
// request per deal may be PENDING at a time.
func (s *distributionRequestService) Create(actor Actor, dealID string, input CreateDistributionRequestInput) (*models.DistributionRequest, error) {
	if err := requireRole(actor, models.RolePartner, models.RoleAdmin); err != nil {
		return nil, err
	}

	var req *models.DistributionRequest
	err := database.RunInTx(s.db, func(tx *gorm.DB) error {
		deal, err := findDeal(tx, dealID, true)
		if err != nil {
			return err
		}
		if err := requireDealOwnerOrAdmin(actor, deal); err != nil {
			return err
		}
		if !CanReceiveDistribution(deal.Status) {
			return apperrors.ErrDealNotDistributable
		}

		var pending int64
		if err := tx.Model(&models.DistributionRequest{}).
			Where("deal_id = ? AND status = ?", deal.ID, models.DistributionRequestPending).
			Count(&pending).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		if pending > 0 {
			return apperrors.ErrPendingRequestExists
		}

		funding, err := computeFunding(tx, deal.ID)
		if err != nil {
			return err
		}

		req, err = buildDistributionRequest(input, funding)
		if err != nil {
			return err
		}
		req.DealID = deal.ID
		req.PartnerID = deal.PartnerID

		if err := tx.Create(req).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Named("distribution").Infow("distribution request created",
		"request_id", req.ID, "deal_id", req.DealID, "type", req.DistributionType, "total", req.TotalAmount)
	return req, nil
}

// Approve approves a PENDING request and applies it. The status change and
// every effect of the engine commit together or not at all; a request that
// is no longer PENDING fails with ErrRequestNotPending and changes nothing.
func (s *distributionRequestService) Approve(actor Actor, requestID string) (*DistributionResult, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	var result *DistributionResult
	err := database.RunInTx(s.db, func(tx *gorm.DB) error {
		req, err := findDistributionRequest(tx, requestID)
		if err != nil {
			return err
		}
		if req.Status != models.DistributionRequestPending {
			return apperrors.ErrRequestNotPending
		}

		// Serializes approvals and investments on the deal.
		if _, err := findDeal(tx, req.DealID, true); err != nil {
			return err
		}

		now := time.Now()
		reviewer := actor.ID
		swapped := tx.Model(&models.DistributionRequest{}).
			Where("id = ? AND status = ?", req.ID, models.DistributionRequestPending).
			Updates(map[string]interface{}{
				"status":      models.DistributionRequestApproved,
				"reviewed_by": reviewer,
				"reviewed_at": now,
			})
		if swapped.Error != nil {
			return apperrors.Wrap(apperrors.ErrStorage, swapped.Error)
		}
		if swapped.RowsAffected == 0 {
			return apperrors.ErrRequestNotPending
		}
		req.Status = models.DistributionRequestApproved
		req.ReviewedBy = &reviewer
		req.ReviewedAt = &now

		result, err = s.engine.Apply(tx, req)
		return err
	})
	if err != nil {
		kind := apperrors.KindOf(err)
		metrics.DistributionFailed(string(kind))
		if kind == apperrors.KindConsistency {
			logger.Named("distribution").Errorw("distribution approval rolled back",
				"request_id", requestID, "error", err)
		}
		return nil, err
	}

	capital, profit := money.Zero, money.Zero
	for _, pd := range result.ProfitDistributions {
		capital = capital.Add(pd.CapitalAmount)
		profit = profit.Add(pd.ProfitAmount)
	}
	metrics.DistributionApplied(string(result.Request.DistributionType), capital, profit)

	dispatch(s.notifier, s.payoutEvents(result))
	return result, nil
}

// payoutEvents builds one event per investor plus one for the partner.
func (s *distributionRequestService) payoutEvents(result *DistributionResult) []NotificationEvent {
	type payout struct{ capital, profit money.Money }
	byInvestor := map[string]*payout{}
	for _, pd := range result.ProfitDistributions {
		p, ok := byInvestor[pd.InvestorID]
		if !ok {
			p = &payout{}
			byInvestor[pd.InvestorID] = p
		}
		p.capital = p.capital.Add(pd.CapitalAmount)
		p.profit = p.profit.Add(pd.ProfitAmount)
	}

	investorIDs := make([]string, 0, len(byInvestor))
	for id := range byInvestor {
		investorIDs = append(investorIDs, id)
	}
	sort.Strings(investorIDs)

	title := result.Deal.Title
	events := make([]NotificationEvent, 0, len(investorIDs)+1)
	for _, id := range investorIDs {
		p := byInvestor[id]
		events = append(events, NotificationEvent{
			UserID: id,
			Kind:   NotificationDistributionPaid,
			Title:  "Distribution received",
			Message: fmt.Sprintf("You received %s from %s (capital %s, profit %s).",
				p.capital.Add(p.profit).Display(s.currencySymbol), title,
				p.capital.Display(s.currencySymbol), p.profit.Display(s.currencySymbol)),
		})
	}
	events = append(events, NotificationEvent{
		UserID: result.Request.PartnerID,
		Kind:   NotificationDistributionApproved,
		Title:  "Distribution approved",
		Message: fmt.Sprintf("Your %s distribution of %s for %s was approved and paid out.",
			strings.ToLower(string(result.Request.DistributionType)),
			result.Request.TotalAmount.Display(s.currencySymbol), title),
	})
	return events
}

// Reject rejects a PENDING request with a reason and notifies the partner.
func (s *distributionRequestService) Reject(actor Actor, requestID, reason string) (*models.DistributionRequest, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.WithField(apperrors.ErrRejectionReasonRequired, "rejection_reason", "is required")
	}

	var req *models.DistributionRequest
	err := database.RunInTx(s.db, func(tx *gorm.DB) error {
		var err error
		req, err = findDistributionRequest(tx, requestID)
		if err != nil {
			return err
		}

		now := time.Now()
		reviewer := actor.ID
		swapped := tx.Model(&models.DistributionRequest{}).
			Where("id = ? AND status = ?", req.ID, models.DistributionRequestPending).
			Updates(map[string]interface{}{
				"status":           models.DistributionRequestRejected,
				"reviewed_by":      reviewer,
				"reviewed_at":      now,
				"rejection_reason": reason,
			})
		if swapped.Error != nil {
			return apperrors.Wrap(apperrors.ErrStorage, swapped.Error)
		}
		if swapped.RowsAffected == 0 {
			return apperrors.ErrRequestNotPending
		}
		req.Status = models.DistributionRequestRejected
		req.ReviewedBy = &reviewer
		req.ReviewedAt = &now
		req.RejectionReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.DistributionRejected()
	dispatch(s.notifier, []NotificationEvent{{
		UserID:  req.PartnerID,
		Kind:    NotificationDistributionRejected,
		Title:   "Distribution rejected",
		Message: fmt.Sprintf("Your distribution request of %s was rejected: %s", req.TotalAmount.Display(s.currencySymbol), reason),
	}})
	return req, nil
}

func findDistributionRequest(db *gorm.DB, requestID string) (*models.DistributionRequest, error) {
	var req models.DistributionRequest
	if err := db.First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDistributionRequestNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &req, nil
}

// Get returns a request visible to the actor: administrators see all of
// them, partners only their own.
func (s *distributionRequestService) Get(actor Actor, requestID string) (*models.DistributionRequest, error) {
	if err := requireRole(actor, models.RoleAdmin, models.RolePartner); err != nil {
		return nil, err
	}
	req, err := findDistributionRequest(s.db, requestID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && req.PartnerID != actor.ID {
		return nil, apperrors.ErrDistributionRequestNotFound
	}
	return req, nil
}

// ListByDeal returns the deal's requests, newest first.
func (s *distributionRequestService) ListByDeal(actor Actor, dealID string, page pagination.PageRequest) (*pagination.PageResponse[models.DistributionRequest], error) {
	deal, err := findDeal(s.db, dealID, false)
	if err != nil {
		return nil, err
	}
	if err := requireDealOwnerOrAdmin(actor, deal); err != nil {
		return nil, err
	}
	return s.listRequests(s.db.Model(&models.DistributionRequest{}).Where("deal_id = ?", dealID), page)
}

// ListPending returns the review queue, oldest first.
func (s *distributionRequestService) ListPending(actor Actor, page pagination.PageRequest) (*pagination.PageResponse[models.DistributionRequest], error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.DistributionRequest{}).Where("status = ?", models.DistributionRequestPending)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	var requests []models.DistributionRequest
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at ASC, id ASC").Find(&requests).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(requests, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *distributionRequestService) listRequests(base *gorm.DB, page pagination.PageRequest) (*pagination.PageResponse[models.DistributionRequest], error) {
	page.Defaults()

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	var requests []models.DistributionRequest
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(requests, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListProfitDistributions returns the per-investment payout records of a deal.
// Investors only receive the records of their own investments.
func (s *distributionRequestService) ListProfitDistributions(actor Actor, dealID string, page pagination.PageRequest) (*pagination.PageResponse[models.ProfitDistribution], error) {
	if actor.ID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	deal, err := findDeal(s.db, dealID, false)
	if err != nil {
		return nil, err
	}
	page.Normalize(pagination.Payouts)

	base := s.db.Model(&models.ProfitDistribution{}).Where("deal_id = ?", dealID)
	if !seesWholeDeal(actor, deal) {
		base = base.Where("investor_id = ?", actor.ID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	var records []models.ProfitDistribution
	if err := base.Scopes(pagination.Paginate(page)).
		Order("distribution_date DESC, investment_id ASC").
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}
