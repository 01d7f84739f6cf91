package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/services"
)

// DistributionHandler handles distribution request submission and review.
type DistributionHandler struct {
	distributionService services.DistributionRequestServicer
	auditService        services.AuditServicer
}

// NewDistributionHandler creates a new DistributionHandler.
func NewDistributionHandler(distributionService services.DistributionRequestServicer, auditService services.AuditServicer) *DistributionHandler {
	return &DistributionHandler{distributionService: distributionService, auditService: auditService}
}

// CreateDistributionRequest represents a partner's proposed distribution.
// Amounts left out are derived from the matching percent.
type CreateDistributionRequest struct {
	DistributionType       models.DistributionType `json:"distribution_type" binding:"required,distribution_type"`
	TotalAmount            money.Money             `json:"total_amount" binding:"money_positive"`
	EstimatedReturnCapital money.Money             `json:"estimated_return_capital" binding:"money_nonneg"`
	EstimatedProfit        money.Money             `json:"estimated_profit" binding:"money_nonneg"`
	EstimatedGainPercent   *decimal.Decimal        `json:"estimated_gain_percent" binding:"omitempty,percent"`
	ReservedGainPercent    decimal.Decimal         `json:"reserved_gain_percent" binding:"percent"`
	ReservedAmount         *money.Money            `json:"reserved_amount" binding:"omitempty,money_nonneg"`
	SahemInvestPercent     decimal.Decimal         `json:"sahem_invest_percent" binding:"percent"`
	SahemInvestAmount      *money.Money            `json:"sahem_invest_amount" binding:"omitempty,money_nonneg"`
	Description            string                  `json:"description" binding:"max=2000"`
}

// RejectDistributionRequest carries the reviewer's reason.
type RejectDistributionRequest struct {
	Reason string `json:"rejection_reason" binding:"required,max=2000"`
}

// Create handles submitting a distribution request for a deal.
// @Summary     Submit distribution request
// @Description Propose a PARTIAL or FINAL distribution for an ACTIVE or FUNDED deal
// @Tags        distributions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Deal ID"
// @Param       request body CreateDistributionRequest true "Distribution amounts"
// @Success     201 {object} models.DistributionRequest "Request created"
// @Failure     400 {object} ErrorResponse "Invalid amounts"
// @Failure     409 {object} ErrorResponse "Deal not distributable or request already pending"
// @Router      /deals/{id}/distribution-requests [post]
func (h *DistributionHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dealID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	created, err := h.distributionService.Create(actor, dealID, services.CreateDistributionRequestInput{
		DistributionType:       req.DistributionType,
		TotalAmount:            req.TotalAmount,
		EstimatedReturnCapital: req.EstimatedReturnCapital,
		EstimatedProfit:        req.EstimatedProfit,
		EstimatedGainPercent:   req.EstimatedGainPercent,
		ReservedGainPercent:    req.ReservedGainPercent,
		ReservedAmount:         req.ReservedAmount,
		SahemInvestPercent:     req.SahemInvestPercent,
		SahemInvestAmount:      req.SahemInvestAmount,
		Description:            req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditCreateDistribution, services.AuditResourceDistribution, created.ID, c.ClientIP(),
		map[string]interface{}{
			"deal_id":          dealID,
			"type":             string(created.DistributionType),
			"total_amount":     created.TotalAmount.String(),
			"net_to_investors": created.NetToInvestors.String(),
		})

	c.JSON(http.StatusCreated, gin.H{"distribution_request": created})
}

// ListByDeal handles listing a deal's distribution requests.
// @Summary     List deal distribution requests
// @Tags        distributions
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Deal ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.DistributionRequest] "Paginated requests"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /deals/{id}/distribution-requests [get]
func (h *DistributionHandler) ListByDeal(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dealID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.distributionService.ListByDeal(actor, dealID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPending handles the administrator review queue.
// @Summary     List pending distribution requests
// @Description Oldest first
// @Tags        distributions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.DistributionRequest] "Paginated requests"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /distribution-requests/pending [get]
func (h *DistributionHandler) ListPending(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.distributionService.ListPending(actor, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles retrieving a distribution request.
// @Summary     Get distribution request
// @Tags        distributions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Distribution request ID"
// @Success     200 {object} models.DistributionRequest "Request"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /distribution-requests/{id} [get]
func (h *DistributionHandler) Get(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	requestID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := h.distributionService.Get(actor, requestID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"distribution_request": req})
}

// Approve handles approving and paying out a request.
// @Summary     Approve distribution request
// @Description Approve a PENDING request and credit every investor in one transaction
// @Tags        distributions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Distribution request ID"
// @Success     200 {object} services.DistributionResult "Applied distribution"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     409 {object} ErrorResponse "Request not pending or deal not distributable"
// @Failure     500 {object} ErrorResponse "Distribution could not be balanced; nothing was written"
// @Router      /distribution-requests/{id}/approve [post]
func (h *DistributionHandler) Approve(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	requestID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.distributionService.Approve(actor, requestID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditApproveDistribution, services.AuditResourceDistribution, requestID, c.ClientIP(),
		map[string]interface{}{
			"deal_id":          result.Request.DealID,
			"net_to_investors": result.Request.NetToInvestors.String(),
			"investments":      len(result.ProfitDistributions),
		})

	c.JSON(http.StatusOK, gin.H{"distribution": result})
}

// Reject handles rejecting a request.
// @Summary     Reject distribution request
// @Tags        distributions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Distribution request ID"
// @Param       request body RejectDistributionRequest true "Reason"
// @Success     200 {object} models.DistributionRequest "Rejected request"
// @Failure     400 {object} ErrorResponse "Reason missing"
// @Failure     409 {object} ErrorResponse "Request not pending"
// @Router      /distribution-requests/{id}/reject [post]
func (h *DistributionHandler) Reject(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	requestID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var body RejectDistributionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondWithError(c, apperrors.WithField(apperrors.ErrRejectionReasonRequired, "rejection_reason", err.Error()))
		return
	}

	req, err := h.distributionService.Reject(actor, requestID, body.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditRejectDistribution, services.AuditResourceDistribution, requestID, c.ClientIP(),
		map[string]interface{}{"reason": req.RejectionReason})

	c.JSON(http.StatusOK, gin.H{"distribution_request": req})
}
