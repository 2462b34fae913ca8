package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/utils"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

// CreateWithInvoicesPaid allocates the receipt number, inserts the payment,
// and flips is_paid on the covered invoices in a single transaction. A
// failure at any step, including a receipt collision under concurrent
// creates, rolls the whole payment back.
func (r *paymentRepository) CreateWithInvoicesPaid(ctx context.Context, payment *entity.Payment, periods []ledger.Period) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receiptNumber, err := nextReceiptNumber(tx)
		if err != nil {
			return err
		}
		payment.ReceiptNumber = receiptNumber
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		for _, p := range periods {
			err := tx.Model(&entity.RentInvoice{}).
				Where("lease_id = ? AND year = ? AND month = ?", payment.LeaseID, p.Year, p.Month).
				Update("is_paid", true).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).Scopes(PaymentOwnerScope(ctx)).
		Preload("Tenant").Preload("Lease").
		First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

// DeleteWithLog soft-deletes the payment and writes its audit snapshot
// together, so no delete ever lands without its log row.
func (r *paymentRepository) DeleteWithLog(ctx context.Context, payment *entity.Payment, log *entity.DeletionLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Payment{}, "id = ?", payment.ID).Error; err != nil {
			return err
		}
		return tx.Create(log).Error
	})
}

func (r *paymentRepository) List(ctx context.Context, params *domainRepo.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Payment{}).Scopes(PaymentOwnerScope(ctx))

	if params.TenantID != nil {
		query = query.Where("tenant_id = ?", *params.TenantID)
	}
	if params.LeaseID != nil {
		query = query.Where("lease_id = ?", *params.LeaseID)
	}
	if params.From != nil {
		query = query.Where("payment_date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("payment_date <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Tenant").
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error

	return payments, total, err
}

func (r *paymentRepository) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("payment_date ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListSince(ctx context.Context, from time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).Scopes(PaymentOwnerScope(ctx)).
		Where("payment_date >= ?", from).
		Order("payment_date ASC").
		Find(&payments).Error
	return payments, err
}

// NextReceiptNumber allocates RCP-<year>-<seq> by incrementing the year's
// highest issued number. Soft-deleted payments keep their number reserved.
func (r *paymentRepository) NextReceiptNumber(ctx context.Context) (string, error) {
	return nextReceiptNumber(r.db.WithContext(ctx))
}

func nextReceiptNumber(db *gorm.DB) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("RCP-%04d-", year)

	var last string
	err := db.Model(&entity.Payment{}).Unscoped().
		Where("receipt_number LIKE ?", prefix+"%").
		Order("receipt_number DESC").
		Limit(1).
		Pluck("receipt_number", &last).Error
	if err != nil {
		return "", err
	}

	sequence := 1
	if last != "" {
		var lastSeq int
		if _, err := fmt.Sscanf(last[len(prefix):], "%d", &lastSeq); err == nil {
			sequence = lastSeq + 1
		}
	}
	return utils.FormatReceiptNumber(year, sequence), nil
}
