package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"saheminvest/internal/database"
	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/models"
	"saheminvest/internal/pagination"
)

// manualDealTransitions lists the status changes a caller may request.
// FUNDED is entered by the pool when the goal is reached and COMPLETED only by
// the distribution engine.
var manualDealTransitions = map[models.DealStatus][]models.DealStatus{
	models.DealStatusDraft:     {models.DealStatusPublished, models.DealStatusActive, models.DealStatusCancelled},
	models.DealStatusPublished: {models.DealStatusActive, models.DealStatusCancelled},
	models.DealStatusActive:    {models.DealStatusCancelled},
	models.DealStatusFunded:    {models.DealStatusCancelled},
}

// CanReceiveInvestment reports whether a deal in status accepts new capital.
func CanReceiveInvestment(status models.DealStatus) bool {
	return status == models.DealStatusPublished || status == models.DealStatusActive
}

// CanReceiveDistribution reports whether a deal in status accepts distribution requests.
func CanReceiveDistribution(status models.DealStatus) bool {
	return status == models.DealStatusActive || status == models.DealStatusFunded
}

// IsValidDealStatus reports whether status is a known deal status.
func IsValidDealStatus(status models.DealStatus) bool {
	switch status {
	case models.DealStatusDraft, models.DealStatusPublished, models.DealStatusActive,
		models.DealStatusFunded, models.DealStatusCompleted, models.DealStatusCancelled:
		return true
	}
	return false
}

func canTransition(from, to models.DealStatus) bool {
	for _, allowed := range manualDealTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// dealService handles the deal lifecycle.
type dealService struct {
	db *gorm.DB
}

// NewDealService creates a new DealServicer.
func NewDealService(db *gorm.DB) DealServicer {
	return &dealService{db: db}
}

// CreateDeal creates a DRAFT deal. Partners create deals for themselves;
// administrators must name the partner.
func (s *dealService) CreateDeal(actor Actor, input CreateDealInput) (*models.Deal, error) {
	if err := requireRole(actor, models.RolePartner, models.RoleAdmin); err != nil {
		return nil, err
	}

	partnerID := input.PartnerID
	if actor.Role == models.RolePartner {
		partnerID = actor.ID
	}
	if partnerID == "" {
		return nil, apperrors.WithField(apperrors.ErrInvalidInput, "partner_id", "is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.WithField(apperrors.ErrInvalidInput, "title", "is required")
	}
	if !input.FundingGoal.IsPositive() {
		return nil, apperrors.WithField(apperrors.ErrInvalidAmount, "funding_goal", "must be greater than zero")
	}
	if input.MinInvestment.IsNegative() || input.MinInvestment.GreaterThan(input.FundingGoal) {
		return nil, apperrors.WithField(apperrors.ErrInvalidAmount, "min_investment", "must be between zero and the funding goal")
	}
	if input.ExpectedReturn.IsNegative() {
		return nil, apperrors.WithField(apperrors.ErrInvalidPercent, "expected_return", "must not be negative")
	}
	if input.DurationMonths < 0 {
		return nil, apperrors.WithField(apperrors.ErrInvalidInput, "duration_months", "must not be negative")
	}

	var partner models.User
	if err := s.db.Select("id", "role").First(&partner, "id = ?", partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if partner.Role != models.RolePartner {
		return nil, apperrors.WithField(apperrors.ErrInvalidInput, "partner_id", "must reference a partner")
	}

	deal := &models.Deal{
		PartnerID:      partnerID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		FundingGoal:    input.FundingGoal,
		MinInvestment:  input.MinInvestment,
		Status:         models.DealStatusDraft,
		ExpectedReturn: input.ExpectedReturn.Round(2),
		DurationMonths: input.DurationMonths,
	}
	if err := s.db.Create(deal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return deal, nil
}

// GetDeal retrieves a deal by ID
func (s *dealService) GetDeal(dealID string) (*models.Deal, error) {
	return findDeal(s.db, dealID, false)
}

// ListDeals returns a paginated list of deals, newest first.
func (s *dealService) ListDeals(page pagination.PageRequest, filter DealFilter) (*pagination.PageResponse[models.Deal], error) {
	page.Defaults()

	base := s.db.Model(&models.Deal{})
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.PartnerID != nil {
		base = base.Where("partner_id = ?", *filter.PartnerID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var deals []models.Deal
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC, id DESC").
		Find(&deals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(deals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Transition moves a deal to target. Admins and the deal's own partner may
// call it. A deal holding investor capital cannot be cancelled; its capital
// has to be returned through a FINAL distribution.
func (s *dealService) Transition(actor Actor, dealID string, target models.DealStatus) (*models.Deal, error) {
	if !IsValidDealStatus(target) {
		return nil, apperrors.WithField(apperrors.ErrInvalidInput, "status", "unknown deal status")
	}
	if target == models.DealStatusFunded || target == models.DealStatusCompleted {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDealTransition,
			"FUNDED and COMPLETED are reached through funding and final distribution only")
	}

	var deal *models.Deal
	err := database.RunInTx(s.db, func(tx *gorm.DB) error {
		var err error
		deal, err = findDeal(tx, dealID, true)
		if err != nil {
			return err
		}
		if err := requireDealOwnerOrAdmin(actor, deal); err != nil {
			return err
		}
		if !canTransition(deal.Status, target) {
			return apperrors.WithField(apperrors.ErrInvalidDealTransition, "status",
				string(deal.Status)+" cannot move to "+string(target))
		}

		if target == models.DealStatusCancelled {
			funding, err := computeFunding(tx, deal.ID)
			if err != nil {
				return err
			}
			if funding.IsPositive() {
				return apperrors.ErrDealHasCapital
			}
		}

		if err := tx.Model(&models.Deal{}).Where("id = ?", deal.ID).
			Updates(map[string]interface{}{"status": target, "updated_at": time.Now()}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		deal.Status = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}
