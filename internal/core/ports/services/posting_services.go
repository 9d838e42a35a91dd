package services

import (
	"context"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// RentalReaderSvc defines read operations for rental sales
type RentalReaderSvc interface {
	// GetRentalByID retrieves a rental record by its ID.
	GetRentalByID(ctx context.Context, tenantID string, rentalID string) (*domain.RentalRecord, error)

	// ListRentals retrieves a cursor-paginated listing of rental records.
	ListRentals(ctx context.Context, tenantID string, params dto.ListRentalsParams) (*dto.ListRentalsResponse, error)
}

// RentalPostingSvc defines the double-entry posting operations for rental sales
type RentalPostingSvc interface {
	// PostSale prices the rental, posts its recognition and settlement legs
	// into the target ledger tenant, and records the rental.
	PostSale(ctx context.Context, tenantID string, req dto.CreateRentalRequest, creatorUserID string) (*domain.RentalRecord, error)

	// EditSale reverses the rental's prior legs and reposts from the updated
	// request, atomically.
	EditSale(ctx context.Context, tenantID string, rentalID string, req dto.UpdateRentalRequest, requestingUserID string) (*domain.RentalRecord, error)

	// DeleteSale reverses the rental's legs and deletes the record. Rentals
	// with no recorded leg IDs delete the record only.
	DeleteSale(ctx context.Context, tenantID string, rentalID string, requestingUserID string) error
}

// PostingSvcFacade combines all rental posting service interfaces
type PostingSvcFacade interface {
	RentalReaderSvc
	RentalPostingSvc
}
