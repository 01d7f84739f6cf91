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

// DealHandler handles deal lifecycle and investment pool requests.
type DealHandler struct {
	dealService         services.DealServicer
	poolService         services.PoolServicer
	distributionService services.DistributionRequestServicer
	auditService        services.AuditServicer
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(dealService services.DealServicer, poolService services.PoolServicer,
	distributionService services.DistributionRequestServicer, auditService services.AuditServicer) *DealHandler {
	return &DealHandler{
		dealService:         dealService,
		poolService:         poolService,
		distributionService: distributionService,
		auditService:        auditService,
	}
}

// CreateDealRequest represents the request payload for creating a deal.
type CreateDealRequest struct {
	PartnerID      string          `json:"partner_id" binding:"omitempty,uuid"`
	Title          string          `json:"title" binding:"required,min=1,max=200"`
	Description    string          `json:"description" binding:"max=5000"`
	FundingGoal    money.Money     `json:"funding_goal" binding:"money_positive"`
	MinInvestment  money.Money     `json:"min_investment" binding:"money_nonneg"`
	ExpectedReturn decimal.Decimal `json:"expected_return" binding:"percent"`
	DurationMonths int             `json:"duration_months" binding:"gte=0,lte=600"`
}

// TransitionRequest represents the request payload for a manual status change.
type TransitionRequest struct {
	Status models.DealStatus `json:"status" binding:"required,deal_status"`
}

// InvestRequest represents the request payload for committing capital to a deal.
type InvestRequest struct {
	Amount money.Money `json:"amount" binding:"money_positive"`
}

// DealListQuery holds the optional list filters.
type DealListQuery struct {
	Status    models.DealStatus `form:"status" binding:"omitempty,deal_status"`
	PartnerID string            `form:"partner_id" binding:"omitempty,uuid"`
}

// CreateDeal handles creating a deal in DRAFT.
// @Summary     Create deal
// @Description Create a new deal in DRAFT. Partners create deals for themselves; administrators name the partner.
// @Tags        deals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDealRequest true "Deal details"
// @Success     201 {object} models.Deal "Deal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deal, err := h.dealService.CreateDeal(actor, services.CreateDealInput{
		PartnerID:      req.PartnerID,
		Title:          req.Title,
		Description:    req.Description,
		FundingGoal:    req.FundingGoal,
		MinInvestment:  req.MinInvestment,
		ExpectedReturn: req.ExpectedReturn,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditCreateDeal, services.AuditResourceDeal, deal.ID, c.ClientIP(),
		map[string]interface{}{"funding_goal": deal.FundingGoal.String(), "partner_id": deal.PartnerID})

	c.JSON(http.StatusCreated, gin.H{"deal": deal})
}

// ListDeals handles listing deals.
// @Summary     List deals
// @Description Get a paginated list of deals, newest first
// @Tags        deals
// @Produce     json
// @Security    BearerAuth
// @Param       status     query string false "Deal status"
// @Param       partner_id query string false "Partner ID"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Deal] "Paginated deals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query DealListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.DealFilter
	if query.Status != "" {
		filter.Status = &query.Status
	}
	if query.PartnerID != "" {
		filter.PartnerID = &query.PartnerID
	}

	result, err := h.dealService.ListDeals(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDeal handles retrieving a deal.
// @Summary     Get deal by ID
// @Tags        deals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Deal ID"
// @Success     200 {object} models.Deal "Deal details"
// @Failure     404 {object} ErrorResponse "Deal not found"
// @Router      /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	dealID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deal, err := h.dealService.GetDeal(dealID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deal": deal})
}

// Transition handles a manual deal status change.
// @Summary     Change deal status
// @Description Publish, activate or cancel a deal. Allowed for admins and the deal's partner. FUNDED and COMPLETED are reached automatically.
// @Tags        deals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Deal ID"
// @Param       request body TransitionRequest true "Target status"
// @Success     200 {object} models.Deal "Updated deal"
// @Failure     403 {object} ErrorResponse "Not an admin or the deal's partner"
// @Failure     409 {object} ErrorResponse "Transition not allowed"
// @Router      /deals/{id}/transition [post]
func (h *DealHandler) Transition(c *gin.Context) {
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

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deal, err := h.dealService.Transition(actor, dealID, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditTransitionDeal, services.AuditResourceDeal, deal.ID, c.ClientIP(),
		map[string]interface{}{"status": string(deal.Status)})

	c.JSON(http.StatusOK, gin.H{"deal": deal})
}

// Invest handles committing wallet funds to a deal.
// @Summary     Invest in deal
// @Description Debit the investor's wallet and add the amount to the deal's pool
// @Tags        deals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Deal ID"
// @Param       request body InvestRequest true "Amount"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid amount or insufficient balance"
// @Failure     409 {object} ErrorResponse "Deal not open"
// @Router      /deals/{id}/investments [post]
func (h *DealHandler) Invest(c *gin.Context) {
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

	var req InvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.poolService.Invest(actor, dealID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditInvest, services.AuditResourceInvestment, investment.ID, c.ClientIP(),
		map[string]interface{}{"deal_id": dealID, "amount": req.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetPool handles retrieving a deal's funding pool.
// @Summary     Get deal pool
// @Description Funding computed from investments. Admins and the deal's partner see every position, other callers only their own
// @Tags        deals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Deal ID"
// @Success     200 {object} services.PoolSummary "Pool summary"
// @Failure     404 {object} ErrorResponse "Deal not found"
// @Router      /deals/{id}/pool [get]
func (h *DealHandler) GetPool(c *gin.Context) {
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

	pool, err := h.poolService.GetPool(actor, dealID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pool": pool})
}

// ListProfitDistributions handles listing a deal's payout records.
// @Summary     List deal payouts
// @Description Admins and the deal's partner see every payout, investors only their own
// @Tags        deals
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Deal ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 500)"
// @Success     200 {object} pagination.PageResponse[models.ProfitDistribution] "Paginated payouts"
// @Failure     404 {object} ErrorResponse "Deal not found"
// @Router      /deals/{id}/distributions [get]
func (h *DealHandler) ListProfitDistributions(c *gin.Context) {
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

	result, err := h.distributionService.ListProfitDistributions(actor, dealID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
