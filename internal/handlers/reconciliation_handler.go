package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saheminvest/internal/services"
)

// pipelineUserID stands in for the acting user on audit rows written by the
// reconciliation pipeline.
const pipelineUserID = "00000000-0000-0000-0000-000000000000"

// ReconciliationHandler handles platform-wide audits and the audit trail.
type ReconciliationHandler struct {
	reconciliationService services.ReconciliationServicer
	auditService          services.AuditServicer
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationService services.ReconciliationServicer, auditService services.AuditServicer) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService, auditService: auditService}
}

// Run handles a reconciliation run triggered by the pipeline.
// @Summary     Run reconciliation
// @Description Replays every wallet and recomputes every deal's funding; mismatches are reported, never repaired
// @Tags        internal
// @Produce     json
// @Param       X-API-Key header string true "Pipeline API key"
// @Success     200 {object} services.ReconciliationReport "Report"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /internal/reconcile [post]
func (h *ReconciliationHandler) Run(c *gin.Context) {
	report, err := h.reconciliationService.Run()
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(pipelineUserID, services.AuditRunReconciliation, services.AuditResourceReconciliation, "", c.ClientIP(),
		map[string]interface{}{"users": report.CheckedUsers, "deals": report.CheckedDeals, "mismatches": report.Mismatches()})

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// AuditTrail handles listing the audit rows of one resource.
// @Summary     Audit trail
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       type      path  string true  "Resource type"
// @Param       id        path  string true  "Resource ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Paginated audit rows"
// @Router      /admin/audit/{type}/{id} [get]
func (h *ReconciliationHandler) AuditTrail(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.auditService.ListForResource(c.Param("type"), c.Param("id"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
