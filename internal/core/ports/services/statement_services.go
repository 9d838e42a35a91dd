package services

import (
	"context"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// StatementSvcFacade defines statement-of-account generation
type StatementSvcFacade interface {
	// GetStatement computes the opening balance as of the period start and
	// returns the period's transactions in chronological order.
	GetStatement(ctx context.Context, tenantID string, params dto.StatementParams) (*domain.Statement, error)
}
