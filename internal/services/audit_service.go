package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/logger"
	"saheminvest/internal/models"
	"saheminvest/internal/pagination"
)

// Audit actions.
const (
	AuditRegister               = "REGISTER"
	AuditDeposit                = "DEPOSIT"
	AuditConfirmDeposit         = "CONFIRM_DEPOSIT"
	AuditRejectDeposit          = "REJECT_DEPOSIT"
	AuditWithdraw               = "WITHDRAW"
	AuditCreateDeal             = "CREATE_DEAL"
	AuditTransitionDeal         = "TRANSITION_DEAL"
	AuditInvest                 = "INVEST"
	AuditCreateDistribution     = "CREATE_DISTRIBUTION_REQUEST"
	AuditApproveDistribution    = "APPROVE_DISTRIBUTION_REQUEST"
	AuditRejectDistribution     = "REJECT_DISTRIBUTION_REQUEST"
	AuditRunReconciliation      = "RUN_RECONCILIATION"
	AuditResourceUser           = "user"
	AuditResourceDeal           = "deal"
	AuditResourceInvestment     = "investment"
	AuditResourceDistribution   = "distribution_request"
	AuditResourceReconciliation = "reconciliation"
	AuditResourceTransaction    = "transaction"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// ListForResource returns the audit trail of one resource, newest first.
func (s *auditService) ListForResource(resourceType, resourceID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	base := s.db.Model(&models.AuditLog{}).Where("resource_type = ? AND resource_id = ?", resourceType, resourceID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	var entries []models.AuditLog
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}
