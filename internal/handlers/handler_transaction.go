package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/middleware"
)

// transactionHandler handles HTTP requests related to journal transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(txnService portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: txnService}
}

// registerTransactionRoutes registers transaction routes under a tenant group.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnService)

	// Bulk imports are expensive; cap them at 10 per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	importLimiter := limiter.New(memory.NewStore(), rate)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.POST("/import", middleware.RateLimit(importLimiter), h.importTransactions)
		transactions.GET("/:transaction_id", h.getTransaction)
		transactions.PUT("/:transaction_id", h.updateTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a money movement. Settled rows linked to a real account move its balance atomically.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), tenantID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns a filtered, cursor-paginated listing ordered by (date DESC, createdAt DESC).
// @Tags transactions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor from a previous page"
// @Param   status query string false "Filter by status (PAID/UNPAID)"
// @Param   direction query string false "Filter by direction (IN/OUT)"
// @Param   accountID query string false "Filter by linked account"
// @Param   businessUnitID query string false "Filter by business unit"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.txnService.ListTransactions(c.Request.Context(), tenantID, params)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// importTransactions godoc
// @Summary Bulk import transactions
// @Description Inserts a batch of pre-parsed rows under one batch ID. Duplicate rows are skipped and reported by index.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   import body dto.ImportTransactionsRequest true "Rows to import"
// @Success 200 {object} dto.ImportTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to import transactions"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/transactions/import [post]
func (h *transactionHandler) importTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.ImportTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for importTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.txnService.ImportTransactions(c.Request.Context(), tenantID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to import transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	txnID := c.Param("transaction_id")

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), tenantID, txnID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces every mutable field; the old balance effect is reversed and the new one applied atomically.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "New field values"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	txnID := c.Param("transaction_id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), tenantID, txnID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the row and reverses its balance effect atomically.
// @Tags transactions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	txnID := c.Param("transaction_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), tenantID, txnID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
