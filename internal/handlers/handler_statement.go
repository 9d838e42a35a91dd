package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/middleware"
)

// statementHandler handles HTTP requests for statements of account.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(statementService portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: statementService}
}

// registerStatementRoutes registers the statement route under a tenant group.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)
	rg.GET("/statement", h.getStatement)
}

// getStatement godoc
// @Summary Statement of account
// @Description Returns the opening balance as of the start date plus the period's transactions in chronological order for a counterparty label.
// @Tags statements
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   accountLabel query string true "Counterparty label or financial account name"
// @Param   startDate query string true "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string true "Inclusive end date (YYYY-MM-DD)"
// @Param   businessUnitID query string false "Restrict to one business unit"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/statement [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	if params.EndDate.Before(params.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not precede startDate"})
		return
	}

	statement, err := h.statementService.GetStatement(c.Request.Context(), tenantID, params)
	if err != nil {
		logger.Error("Failed to build statement", slog.String("error", err.Error()), slog.String("account_label", params.AccountLabel))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}
