package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
)

// RentInvoiceRepository defines the interface for rent invoice data operations
type RentInvoiceRepository interface {
	CreateBatch(ctx context.Context, invoices []entity.RentInvoice) error
	ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.RentInvoice, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.RentInvoice, error)
	// MarkPaid sets is_paid on the lease's invoices for the given periods
	MarkPaid(ctx context.Context, leaseID uuid.UUID, periods []ledger.Period) error
	// MarkUnpaid clears is_paid, used when a payment covering the periods
	// is deleted
	MarkUnpaid(ctx context.Context, leaseID uuid.UUID, periods []ledger.Period) error
}
