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

// rentalHandler handles HTTP requests related to point-of-sale rentals.
type rentalHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newRentalHandler creates a new rentalHandler.
func newRentalHandler(postingService portssvc.PostingSvcFacade) *rentalHandler {
	return &rentalHandler{postingService: postingService}
}

// registerRentalRoutes registers rental routes under a tenant group.
func registerRentalRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newRentalHandler(postingService)

	rentals := rg.Group("/rentals")
	{
		rentals.POST("", h.postSale)
		rentals.GET("", h.listRentals)
		rentals.GET("/:rental_id", h.getRental)
		rentals.PUT("/:rental_id", h.editSale)
		rentals.DELETE("/:rental_id", h.deleteSale)
	}
}

// postSale godoc
// @Summary Record a rental sale
// @Description Prices the sale, posts its recognition and settlement legs into the configured target ledger, and records the rental, all atomically.
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   rental body dto.CreateRentalRequest true "Sale details"
// @Success 201 {object} dto.RentalResponse
// @Failure 400 {object} map[string]string "Invalid input or split mismatch"
// @Failure 422 {object} map[string]string "Pricing not configured"
// @Failure 500 {object} map[string]string "Failed to post sale"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/rentals [post]
func (h *rentalHandler) postSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for postSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rental, err := h.postingService.PostSale(c.Request.Context(), tenantID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPricingNotConfigured) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to post rental sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post sale"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRentalResponse(rental))
}

// listRentals godoc
// @Summary List rental records
// @Tags rentals
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor from a previous page"
// @Param   outletID query string false "Filter by outlet"
// @Success 200 {object} dto.ListRentalsResponse
// @Failure 500 {object} map[string]string "Failed to list rentals"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/rentals [get]
func (h *rentalHandler) listRentals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var params dto.ListRentalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.postingService.ListRentals(c.Request.Context(), tenantID, params)
	if err != nil {
		logger.Error("Failed to list rentals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rentals"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getRental godoc
// @Summary Get a rental record
// @Tags rentals
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   rental_id path string true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rental"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/rentals/{rental_id} [get]
func (h *rentalHandler) getRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	rentalID := c.Param("rental_id")

	rental, err := h.postingService.GetRentalByID(c.Request.Context(), tenantID, rentalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
			return
		}
		logger.Error("Failed to get rental", slog.String("error", err.Error()), slog.String("rental_id", rentalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rental"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

// editSale godoc
// @Summary Edit a rental sale
// @Description Reverses the prior journal legs and reposts the sale from the updated details in one atomic unit.
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   rental_id path string true "Rental ID"
// @Param   rental body dto.UpdateRentalRequest true "Updated sale details"
// @Success 200 {object} dto.RentalResponse
// @Failure 400 {object} map[string]string "Invalid input or split mismatch"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 422 {object} map[string]string "Pricing not configured"
// @Failure 500 {object} map[string]string "Failed to edit sale"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/rentals/{rental_id} [put]
func (h *rentalHandler) editSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	rentalID := c.Param("rental_id")

	var req dto.UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rental, err := h.postingService.EditSale(c.Request.Context(), tenantID, rentalID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
			return
		}
		if errors.Is(err, apperrors.ErrPricingNotConfigured) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to edit rental sale", slog.String("error", err.Error()), slog.String("rental_id", rentalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to edit sale"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

// deleteSale godoc
// @Summary Delete a rental sale
// @Description Reverses the sale's journal legs and deletes the record atomically.
// @Tags rentals
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   rental_id path string true "Rental ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to delete sale"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/rentals/{rental_id} [delete]
func (h *rentalHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	rentalID := c.Param("rental_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.postingService.DeleteSale(c.Request.Context(), tenantID, rentalID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
			return
		}
		logger.Error("Failed to delete rental sale", slog.String("error", err.Error()), slog.String("rental_id", rentalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}

	c.Status(http.StatusNoContent)
}
