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

// financialAccountHandler handles HTTP requests related to cash/bank accounts.
type financialAccountHandler struct {
	accountService portssvc.FinancialAccountSvcFacade
}

// newFinancialAccountHandler creates a new financialAccountHandler.
func newFinancialAccountHandler(accountService portssvc.FinancialAccountSvcFacade) *financialAccountHandler {
	return &financialAccountHandler{accountService: accountService}
}

// registerFinancialAccountRoutes registers account routes under a tenant group.
func registerFinancialAccountRoutes(rg *gin.RouterGroup, accountService portssvc.FinancialAccountSvcFacade) {
	h := newFinancialAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deactivateAccount)
	}
}

// createAccount godoc
// @Summary Create a financial account
// @Description Creates a new cash/bank account with a zero balance.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account body dto.CreateFinancialAccountRequest true "Account details"
// @Success 201 {object} dto.FinancialAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate name"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [post]
func (h *financialAccountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateFinancialAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateFinancialAccount(c.Request.Context(), tenantID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create financial account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFinancialAccountResponse(account))
}

// listAccounts godoc
// @Summary List financial accounts
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   includeInactive query bool false "Include deactivated accounts"
// @Success 200 {array} dto.FinancialAccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [get]
func (h *financialAccountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	includeInactive := c.Query("includeInactive") == "true"

	accounts, err := h.accountService.ListFinancialAccounts(c.Request.Context(), tenantID, includeInactive)
	if err != nil {
		logger.Error("Failed to list financial accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialAccountResponses(accounts))
}

// getAccount godoc
// @Summary Get a financial account
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.FinancialAccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id} [get]
func (h *financialAccountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	accountID := c.Param("account_id")

	account, err := h.accountService.GetFinancialAccountByID(c.Request.Context(), tenantID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to get financial account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialAccountResponse(account))
}

// updateAccount godoc
// @Summary Update a financial account
// @Description Updates name/bank metadata. The cached balance is not writable.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account_id path string true "Account ID"
// @Param   account body dto.UpdateFinancialAccountRequest true "Fields to update"
// @Success 200 {object} dto.FinancialAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Duplicate name"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id} [put]
func (h *financialAccountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	accountID := c.Param("account_id")

	var req dto.UpdateFinancialAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.UpdateFinancialAccount(c.Request.Context(), tenantID, accountID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update financial account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate a financial account
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account_id path string true "Account ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to deactivate account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id} [delete]
func (h *financialAccountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	accountID := c.Param("account_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.accountService.DeactivateFinancialAccount(c.Request.Context(), tenantID, accountID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to deactivate financial account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate account"})
		return
	}

	c.Status(http.StatusNoContent)
}
