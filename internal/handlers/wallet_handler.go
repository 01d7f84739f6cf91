package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/services"
)

// WalletHandler handles wallet funding and ledger history requests.
type WalletHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *WalletHandler {
	return &WalletHandler{ledgerService: ledgerService, auditService: auditService}
}

// WalletOperationRequest represents a deposit or withdrawal.
type WalletOperationRequest struct {
	Amount      money.Money `json:"amount" binding:"money_positive"`
	Description string      `json:"description" binding:"max=500"`
}

// TransactionQuery holds the optional ledger history filters.
type TransactionQuery struct {
	FromDate *time.Time             `form:"from_date" time_format:"2006-01-02" time_utc:"1"`
	ToDate   *time.Time             `form:"to_date" time_format:"2006-01-02" time_utc:"1"`
	Type     models.TransactionType `form:"type"`
}

// Deposit handles recording a deposit for review. The wallet is credited
// only when an administrator confirms the deposit.
// @Summary     Request deposit
// @Description Record a PENDING deposit; an administrator confirms it before the wallet is credited
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body WalletOperationRequest true "Amount"
// @Success     201 {object} models.Transaction "Pending ledger entry"
// @Failure     400 {object} ErrorResponse "Invalid amount"
// @Router      /wallet/deposit [post]
func (h *WalletHandler) Deposit(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WalletOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	description := req.Description
	if description == "" {
		description = "Wallet deposit"
	}

	entry, err := h.ledgerService.RequestDeposit(actor.ID, req.Amount, description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditDeposit, services.AuditResourceTransaction, entry.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "reference": entry.Reference, "status": entry.Status})

	c.JSON(http.StatusCreated, gin.H{"transaction": entry})
}

// ListPendingDeposits handles the administrator's deposit review queue.
// @Summary     List pending deposits
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated pending deposits"
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Router      /admin/deposits [get]
func (h *WalletHandler) ListPendingDeposits(c *gin.Context) {
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

	result, err := h.ledgerService.ListPendingDeposits(actor, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ConfirmDeposit handles settling a pending deposit into the user's wallet.
// @Summary     Confirm deposit
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Completed ledger entry"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     409 {object} ErrorResponse "Deposit already reviewed"
// @Router      /admin/deposits/{id}/confirm [post]
func (h *WalletHandler) ConfirmDeposit(c *gin.Context) {
	h.reviewDeposit(c, h.ledgerService.ConfirmDeposit, services.AuditConfirmDeposit)
}

// RejectDeposit handles refusing a pending deposit.
// @Summary     Reject deposit
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Failed ledger entry"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     409 {object} ErrorResponse "Deposit already reviewed"
// @Router      /admin/deposits/{id}/reject [post]
func (h *WalletHandler) RejectDeposit(c *gin.Context) {
	h.reviewDeposit(c, h.ledgerService.RejectDeposit, services.AuditRejectDeposit)
}

func (h *WalletHandler) reviewDeposit(c *gin.Context, review func(services.Actor, string) (*models.Transaction, error), action string) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := review(actor, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, action, services.AuditResourceTransaction, entry.ID, c.ClientIP(),
		map[string]interface{}{"user_id": entry.UserID, "amount": entry.Amount.String(), "status": entry.Status})

	c.JSON(http.StatusOK, gin.H{"transaction": entry})
}

// Withdraw handles debiting the user's wallet.
// @Summary     Withdraw
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body WalletOperationRequest true "Amount"
// @Success     201 {object} models.Transaction "Ledger entry"
// @Failure     400 {object} ErrorResponse "Invalid amount or insufficient balance"
// @Router      /wallet/withdraw [post]
func (h *WalletHandler) Withdraw(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WalletOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	description := req.Description
	if description == "" {
		description = "Wallet withdrawal"
	}

	entry, err := h.ledgerService.AppendEntry(services.LedgerEntry{
		UserID:      actor.ID,
		Type:        models.TransactionTypeWithdrawal,
		Amount:      req.Amount,
		Description: description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditWithdraw, services.AuditResourceTransaction, entry.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "reference": entry.Reference})

	c.JSON(http.StatusCreated, gin.H{"transaction": entry})
}

// ListTransactions handles the user's ledger history.
// @Summary     List wallet transactions
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "From date (YYYY-MM-DD)"
// @Param       to_date   query string false "To date (YYYY-MM-DD)"
// @Param       type      query string false "Entry type"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 500)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated ledger entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /wallet/transactions [get]
func (h *WalletHandler) ListTransactions(c *gin.Context) {
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

	var query TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TransactionFilter{FromDate: query.FromDate, ToDate: query.ToDate}
	if query.Type != "" {
		if !query.Type.IsValid() {
			respondWithError(c, apperrors.WithField(apperrors.ErrInvalidTransactionType, "type", string(query.Type)))
			return
		}
		filter.Type = &query.Type
	}

	result, err := h.ledgerService.GetUserTransactions(actor.ID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Reconcile handles checking the user's wallet against the ledger.
// @Summary     Reconcile wallet
// @Description Replays the ledger and compares it with the cached wallet totals
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.WalletReconciliation "Reconciliation"
// @Router      /wallet/reconcile [get]
func (h *WalletHandler) Reconcile(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rec, err := h.ledgerService.Reconcile(actor.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reconciliation": rec, "balanced": rec.IsBalanced()})
}
