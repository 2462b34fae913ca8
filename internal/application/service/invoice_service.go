package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InvoiceService generates and reads rent invoices. Invoices are not created
// on a schedule; EnsureUpToDate backfills them whenever a lease's ledger is
// read or a payment is recorded.
type InvoiceService struct {
	invoiceRepo    repository.RentInvoiceRepository
	adjustmentRepo repository.RentAdjustmentRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.RentInvoiceRepository, adjustmentRepo repository.RentAdjustmentRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo, adjustmentRepo: adjustmentRepo}
}

// EnsureUpToDate creates any missing monthly invoices for the lease, from the
// lease start through asOf (or through the end date of a terminated lease).
// Each invoice is priced at the rent in effect for its month, so backfilled
// months around a rent adjustment get the amount that applied at the time.
func (s *InvoiceService) EnsureUpToDate(ctx context.Context, lease *entity.Lease, asOf time.Time) ([]entity.RentInvoice, error) {
	end := asOf
	if lease.Status.IsTerminated() && lease.EndDate != nil && lease.EndDate.Before(asOf) {
		end = *lease.EndDate
	}

	existing, err := s.invoiceRepo.ListByLease(ctx, lease.ID)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(existing))
	for i := range existing {
		have[existing[i].PeriodKey()] = true
	}

	adjustments, err := s.adjustmentRepo.ListByLease(ctx, lease.ID)
	if err != nil {
		return nil, err
	}

	var created []entity.RentInvoice
	for _, p := range ledger.PeriodsBetween(lease.StartDate, end) {
		if have[p.Key()] {
			continue
		}
		firstOfMonth := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
		created = append(created, entity.RentInvoice{
			LeaseID:  lease.ID,
			TenantID: lease.TenantID,
			Amount:   rentForPeriod(lease, adjustments, firstOfMonth),
			DueDate:  firstOfMonth,
			Month:    int(p.Month),
			Year:     p.Year,
		})
	}

	if err := s.invoiceRepo.CreateBatch(ctx, created); err != nil {
		return nil, err
	}

	return s.invoiceRepo.ListByLease(ctx, lease.ID)
}

// ListByLease returns the lease's invoices in period order
func (s *InvoiceService) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.RentInvoice, error) {
	return s.invoiceRepo.ListByLease(ctx, leaseID)
}

// ListByTenant returns the tenant's invoices across all leases
func (s *InvoiceService) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.RentInvoice, error) {
	return s.invoiceRepo.ListByTenant(ctx, tenantID)
}

// rentForPeriod resolves the rent that applied on the given day from the
// adjustment history. Before the first adjustment the original rent applies,
// which PreviousRent preserves even though the lease row has been updated.
func rentForPeriod(lease *entity.Lease, adjustments []entity.RentAdjustment, day time.Time) decimal.Decimal {
	rent := lease.MonthlyRent
	if len(adjustments) > 0 {
		rent = adjustments[0].PreviousRent
	}
	for i := range adjustments {
		if adjustments[i].EffectiveDate.After(day) {
			break
		}
		rent = adjustments[i].NewRent
	}
	return rent
}
