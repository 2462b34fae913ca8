package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(db *gorm.DB) domainRepo.LeaseRepository {
	return &leaseRepository{db: db}
}

func (r *leaseRepository) Create(ctx context.Context, lease *entity.Lease) error {
	return r.db.WithContext(ctx).Create(lease).Error
}

func (r *leaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	var lease entity.Lease
	err := r.db.WithContext(ctx).Scopes(LeaseOwnerScope(ctx)).
		Preload("Tenant").Preload("Shop").
		First(&lease, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lease, err
}

func (r *leaseRepository) GetActiveByShop(ctx context.Context, shopID uuid.UUID) (*entity.Lease, error) {
	var lease entity.Lease
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND status <> ?", shopID, enum.LeaseStatusTerminated).
		First(&lease).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lease, err
}

func (r *leaseRepository) Update(ctx context.Context, lease *entity.Lease) error {
	return r.db.WithContext(ctx).Save(lease).Error
}

func (r *leaseRepository) List(ctx context.Context, params *domainRepo.LeaseFilterParams) ([]entity.Lease, int64, error) {
	var leases []entity.Lease
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Lease{}).Scopes(LeaseOwnerScope(ctx))

	if params.TenantID != nil {
		query = query.Where("tenant_id = ?", *params.TenantID)
	}
	if params.ShopID != nil {
		query = query.Where("shop_id = ?", *params.ShopID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Tenant").Preload("Shop").
		Order("start_date DESC").
		Find(&leases).Error

	return leases, total, err
}

func (r *leaseRepository) ListActive(ctx context.Context) ([]entity.Lease, error) {
	var leases []entity.Lease
	err := r.db.WithContext(ctx).Scopes(LeaseOwnerScope(ctx)).
		Where("status <> ?", enum.LeaseStatusTerminated).
		Preload("Tenant").Preload("Shop").
		Find(&leases).Error
	return leases, err
}

func (r *leaseRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Lease, error) {
	var leases []entity.Lease
	err := r.db.WithContext(ctx).Scopes(LeaseOwnerScope(ctx)).
		Where("tenant_id = ?", tenantID).
		Preload("Shop").
		Order("start_date DESC").
		Find(&leases).Error
	return leases, err
}

func (r *leaseRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]entity.Lease, error) {
	var leases []entity.Lease
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("start_date DESC").
		Find(&leases).Error
	return leases, err
}

func (r *leaseRepository) Terminate(ctx context.Context, lease *entity.Lease, shop *entity.Shop) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lease.Status = enum.LeaseStatusTerminated
		lease.TerminatedAt = &now
		if lease.EndDate == nil {
			endDate := now
			lease.EndDate = &endDate
		}
		if err := tx.Save(lease).Error; err != nil {
			return err
		}
		shop.Status = enum.ShopStatusVacant
		return tx.Save(shop).Error
	})
}

func (r *leaseRepository) CreateWithShopOccupied(ctx context.Context, lease *entity.Lease, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lease).Error; err != nil {
			return err
		}
		shop.Status = enum.ShopStatusOccupied
		return tx.Save(shop).Error
	})
}

type rentAdjustmentRepository struct {
	db *gorm.DB
}

// NewRentAdjustmentRepository creates a new rent adjustment repository
func NewRentAdjustmentRepository(db *gorm.DB) domainRepo.RentAdjustmentRepository {
	return &rentAdjustmentRepository{db: db}
}

func (r *rentAdjustmentRepository) CreateWithLeaseRent(ctx context.Context, adjustment *entity.RentAdjustment, lease *entity.Lease) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(adjustment).Error; err != nil {
			return err
		}
		lease.MonthlyRent = adjustment.NewRent
		return tx.Save(lease).Error
	})
}

func (r *rentAdjustmentRepository) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.RentAdjustment, error) {
	var adjustments []entity.RentAdjustment
	err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("effective_date ASC").
		Find(&adjustments).Error
	return adjustments, err
}
