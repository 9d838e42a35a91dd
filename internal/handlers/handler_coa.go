package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/middleware"
)

// coaHandler handles HTTP requests related to the chart of accounts.
type coaHandler struct {
	coaService portssvc.COASvcFacade
}

// newCOAHandler creates a new coaHandler.
func newCOAHandler(coaService portssvc.COASvcFacade) *coaHandler {
	return &coaHandler{coaService: coaService}
}

// registerCOARoutes registers chart-of-accounts routes under a tenant group.
func registerCOARoutes(rg *gin.RouterGroup, coaService portssvc.COASvcFacade) {
	h := newCOAHandler(coaService)

	coa := rg.Group("/coa")
	{
		coa.POST("", h.createCOA)
		coa.GET("", h.listCOA)
		coa.GET("/balances", h.listCOABalances)
		coa.GET("/:coa_id", h.getCOA)
		coa.PUT("/:coa_id", h.updateCOA)
		coa.DELETE("/:coa_id", h.deactivateCOA)
	}
}

// createCOA godoc
// @Summary Create a chart-of-accounts entry
// @Description Creates a new COA entry. Omitting accountType classifies it from the code's leading digit.
// @Tags coa
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   coa body dto.CreateCOARequest true "COA details"
// @Success 201 {object} dto.COAResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate code"
// @Failure 500 {object} map[string]string "Failed to create COA"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/coa [post]
func (h *coaHandler) createCOA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateCOARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createCOA", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	coa, err := h.coaService.CreateCOA(c.Request.Context(), tenantID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create COA", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create COA"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCOAResponse(coa))
}

// listCOA godoc
// @Summary List the chart of accounts
// @Description Lists COA entries ordered by code. Pass includeInactive=true to include deactivated entries.
// @Tags coa
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   includeInactive query bool false "Include deactivated entries"
// @Success 200 {array} dto.COAResponse
// @Failure 500 {object} map[string]string "Failed to list COA"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/coa [get]
func (h *coaHandler) listCOA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	includeInactive := c.Query("includeInactive") == "true"

	coas, err := h.coaService.ListCOA(c.Request.Context(), tenantID, includeInactive)
	if err != nil {
		logger.Error("Failed to list COA", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list COA"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCOAResponses(coas))
}

// listCOABalances godoc
// @Summary List computed COA balances
// @Description Computes every active COA balance from the transaction log; financial accounts appear as synthetic asset rows.
// @Tags coa
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.COABalanceResponse
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/coa/balances [get]
func (h *coaHandler) listCOABalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	balances, err := h.coaService.ListCOABalances(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to compute COA balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCOABalanceResponses(balances))
}

// getCOA godoc
// @Summary Get a chart-of-accounts entry
// @Tags coa
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   coa_id path string true "COA ID"
// @Success 200 {object} dto.COAResponse
// @Failure 404 {object} map[string]string "COA not found"
// @Failure 500 {object} map[string]string "Failed to retrieve COA"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/coa/{coa_id} [get]
func (h *coaHandler) getCOA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	coaID := c.Param("coa_id")

	coa, err := h.coaService.GetCOAByID(c.Request.Context(), tenantID, coaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "COA not found"})
			return
		}
		logger.Error("Failed to get COA", slog.String("error", err.Error()), slog.String("coa_id", coaID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve COA"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCOAResponse(coa))
}

// updateCOA godoc
// @Summary Update a chart-of-accounts entry
// @Description Updates name/description. Code and account type are immutable.
// @Tags coa
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   coa_id path string true "COA ID"
// @Param   coa body dto.UpdateCOARequest true "Fields to update"
// @Success 200 {object} dto.COAResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "COA not found"
// @Failure 500 {object} map[string]string "Failed to update COA"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/coa/{coa_id} [put]
func (h *coaHandler) updateCOA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	coaID := c.Param("coa_id")

	var req dto.UpdateCOARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	coa, err := h.coaService.UpdateCOA(c.Request.Context(), tenantID, coaID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "COA not found"})
			return
		}
		logger.Error("Failed to update COA", slog.String("error", err.Error()), slog.String("coa_id", coaID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update COA"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCOAResponse(coa))
}

// deactivateCOA godoc
// @Summary Deactivate a chart-of-accounts entry
// @Description Soft-deletes a COA entry; historical transactions keep referencing it.
// @Tags coa
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   coa_id path string true "COA ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "COA not found"
// @Failure 500 {object} map[string]string "Failed to deactivate COA"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/coa/{coa_id} [delete]
func (h *coaHandler) deactivateCOA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	coaID := c.Param("coa_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.coaService.DeactivateCOA(c.Request.Context(), tenantID, coaID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "COA not found"})
			return
		}
		logger.Error("Failed to deactivate COA", slog.String("error", err.Error()), slog.String("coa_id", coaID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate COA"})
		return
	}

	c.Status(http.StatusNoContent)
}
