package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type rentInvoiceRepository struct {
	db *gorm.DB
}

// NewRentInvoiceRepository creates a new rent invoice repository
func NewRentInvoiceRepository(db *gorm.DB) domainRepo.RentInvoiceRepository {
	return &rentInvoiceRepository{db: db}
}

func (r *rentInvoiceRepository) CreateBatch(ctx context.Context, invoices []entity.RentInvoice) error {
	if len(invoices) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&invoices).Error
}

func (r *rentInvoiceRepository) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.RentInvoice, error) {
	var invoices []entity.RentInvoice
	err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("year ASC, month ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *rentInvoiceRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.RentInvoice, error) {
	var invoices []entity.RentInvoice
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("year ASC, month ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *rentInvoiceRepository) MarkPaid(ctx context.Context, leaseID uuid.UUID, periods []ledger.Period) error {
	return r.setPaid(ctx, leaseID, periods, true)
}

func (r *rentInvoiceRepository) MarkUnpaid(ctx context.Context, leaseID uuid.UUID, periods []ledger.Period) error {
	return r.setPaid(ctx, leaseID, periods, false)
}

func (r *rentInvoiceRepository) setPaid(ctx context.Context, leaseID uuid.UUID, periods []ledger.Period, paid bool) error {
	if len(periods) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range periods {
			err := tx.Model(&entity.RentInvoice{}).
				Where("lease_id = ? AND year = ? AND month = ?", leaseID, p.Year, p.Month).
				Update("is_paid", paid).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
