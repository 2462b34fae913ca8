package service

import (
	"context"
	"time"

	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardService computes the estate-wide roll-ups
type DashboardService struct {
	tenantRepo  repository.TenantRepository
	leaseRepo   repository.LeaseRepository
	shopRepo    repository.ShopRepository
	invoiceRepo repository.RentInvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	tenantRepo repository.TenantRepository,
	leaseRepo repository.LeaseRepository,
	shopRepo repository.ShopRepository,
	invoiceRepo repository.RentInvoiceRepository,
	paymentRepo repository.PaymentRepository,
) *DashboardService {
	return &DashboardService{
		tenantRepo:  tenantRepo,
		leaseRepo:   leaseRepo,
		shopRepo:    shopRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// SummaryOutput is the dashboard headline card data
type SummaryOutput struct {
	TotalDues          decimal.Decimal         `json:"total_dues"`
	CollectedThisMonth decimal.Decimal         `json:"collected_this_month"`
	ActiveLeases       int                     `json:"active_leases"`
	Occupancy          ledger.OccupancySummary `json:"occupancy"`
}

// GetSummary computes the dashboard headline figures as of now
func (s *DashboardService) GetSummary(ctx context.Context) (*SummaryOutput, error) {
	now := time.Now()

	debtors, err := s.debtorEntries(ctx, now)
	if err != nil {
		return nil, err
	}
	totalDues := decimal.Zero
	for i := range debtors {
		totalDues = totalDues.Add(debtors[i].CurrentDue)
	}

	leases, err := s.leaseRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	shops, err := s.shopRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	payments, err := s.paymentRepo.ListSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	collected := decimal.Zero
	for i := range payments {
		collected = collected.Add(payments[i].Amount)
	}

	return &SummaryOutput{
		TotalDues:          totalDues,
		CollectedThisMonth: collected,
		ActiveLeases:       len(leases),
		Occupancy:          ledger.Occupancy(shops),
	}, nil
}

// TopDebtors returns the n tenants with the highest aggregate dues
func (s *DashboardService) TopDebtors(ctx context.Context, n int) ([]ledger.DebtorEntry, error) {
	entries, err := s.debtorEntries(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return ledger.TopDebtors(entries, n), nil
}

// CollectionTrend returns monthly collection totals for the given window
func (s *DashboardService) CollectionTrend(ctx context.Context, months int) ([]ledger.CollectionPoint, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	payments, err := s.paymentRepo.ListSince(ctx, start)
	if err != nil {
		return nil, err
	}
	return ledger.CollectionTrend(payments, now, months), nil
}

// GetOccupancy returns the estate-wide occupancy projection
func (s *DashboardService) GetOccupancy(ctx context.Context) (*ledger.OccupancySummary, error) {
	shops, err := s.shopRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := ledger.Occupancy(shops)
	return &summary, nil
}

// debtorEntries computes every tenant's aggregate due position. Terminated
// leases still count: an unpaid settlement stays with the tenant.
func (s *DashboardService) debtorEntries(ctx context.Context, asOf time.Time) ([]ledger.DebtorEntry, error) {
	tenants, err := s.tenantRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.DebtorEntry, 0, len(tenants))
	for i := range tenants {
		tenant := &tenants[i]

		leases, err := s.leaseRepo.ListByTenant(ctx, tenant.ID)
		if err != nil {
			return nil, err
		}

		summaries := make([]ledger.Summary, 0, len(leases))
		for j := range leases {
			summary, err := s.leaseSummary(ctx, &leases[j], asOf)
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, summary)
		}

		entries = append(entries, ledger.DebtorEntry{
			TenantID:   tenant.ID,
			TenantName: tenant.Name,
			Phone:      tenant.Phone,
			CurrentDue: ledger.TenantDues(tenant, summaries),
			LeaseCount: len(leases),
		})
	}
	return entries, nil
}

func (s *DashboardService) leaseSummary(ctx context.Context, lease *entity.Lease, asOf time.Time) (ledger.Summary, error) {
	invoices, err := s.invoiceRepo.ListByLease(ctx, lease.ID)
	if err != nil {
		return ledger.Summary{}, err
	}
	payments, err := s.paymentRepo.ListByLease(ctx, lease.ID)
	if err != nil {
		return ledger.Summary{}, err
	}
	computed := ledger.ComputeLeaseLedger(lease, invoices, payments, nil, asOf)
	return computed.Summary, nil
}
