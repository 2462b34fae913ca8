package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// PaymentFilterParams narrows payment listings
type PaymentFilterParams struct {
	Pagination *pagination.PaginationParams
	TenantID   *uuid.UUID
	LeaseID    *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	// CreateWithInvoicesPaid allocates the receipt number, inserts the
	// payment, and marks the covered invoices paid in one transaction
	CreateWithInvoicesPaid(ctx context.Context, payment *entity.Payment, periods []ledger.Period) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	// DeleteWithLog soft-deletes the payment and writes its audit entry
	// in one transaction, so no delete lands without a snapshot
	DeleteWithLog(ctx context.Context, payment *entity.Payment, log *entity.DeletionLog) error
	List(ctx context.Context, params *PaymentFilterParams) ([]entity.Payment, int64, error)
	ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.Payment, error)
	// ListSince returns all payments dated on or after the given day,
	// used by the collection trend
	ListSince(ctx context.Context, from time.Time) ([]entity.Payment, error)
	// NextReceiptNumber allocates the next sequential receipt number
	NextReceiptNumber(ctx context.Context) (string, error)
}
