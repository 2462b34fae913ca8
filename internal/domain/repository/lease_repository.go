package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// LeaseFilterParams narrows lease listings
type LeaseFilterParams struct {
	Pagination *pagination.PaginationParams
	TenantID   *uuid.UUID
	ShopID     *uuid.UUID
	Status     *enum.LeaseStatus
}

// LeaseRepository defines the interface for lease data operations
type LeaseRepository interface {
	Create(ctx context.Context, lease *entity.Lease) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error)
	// GetActiveByShop returns the non-terminated lease on a shop, if any
	GetActiveByShop(ctx context.Context, shopID uuid.UUID) (*entity.Lease, error)
	Update(ctx context.Context, lease *entity.Lease) error
	List(ctx context.Context, params *LeaseFilterParams) ([]entity.Lease, int64, error)
	// ListActive returns every non-terminated lease, used by the dues roll-up
	ListActive(ctx context.Context) ([]entity.Lease, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Lease, error)
	// ListByShop returns every lease ever held on a shop, terminated included
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]entity.Lease, error)
	// Terminate flips the lease terminated and its shop vacant in one
	// transaction, persisting the deposit usage chosen at settlement time
	Terminate(ctx context.Context, lease *entity.Lease, shop *entity.Shop) error
	// CreateWithShopOccupied inserts the lease and marks its shop occupied
	// in one transaction
	CreateWithShopOccupied(ctx context.Context, lease *entity.Lease, shop *entity.Shop) error
}

// RentAdjustmentRepository defines the interface for rent adjustment history
type RentAdjustmentRepository interface {
	// CreateWithLeaseRent records the adjustment and updates the lease's
	// monthly rent in one transaction
	CreateWithLeaseRent(ctx context.Context, adjustment *entity.RentAdjustment, lease *entity.Lease) error
	ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.RentAdjustment, error)
}
