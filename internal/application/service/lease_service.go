package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// LeaseService handles lease lifecycle, the rent ledger and settlements
type LeaseService struct {
	leaseRepo      repository.LeaseRepository
	shopRepo       repository.ShopRepository
	tenantRepo     repository.TenantRepository
	paymentRepo    repository.PaymentRepository
	expenseRepo    repository.ExpenseRepository
	adjustmentRepo repository.RentAdjustmentRepository
	invoiceService *InvoiceService
}

// NewLeaseService creates a new lease service
func NewLeaseService(
	leaseRepo repository.LeaseRepository,
	shopRepo repository.ShopRepository,
	tenantRepo repository.TenantRepository,
	paymentRepo repository.PaymentRepository,
	expenseRepo repository.ExpenseRepository,
	adjustmentRepo repository.RentAdjustmentRepository,
	invoiceService *InvoiceService,
) *LeaseService {
	return &LeaseService{
		leaseRepo:      leaseRepo,
		shopRepo:       shopRepo,
		tenantRepo:     tenantRepo,
		paymentRepo:    paymentRepo,
		expenseRepo:    expenseRepo,
		adjustmentRepo: adjustmentRepo,
		invoiceService: invoiceService,
	}
}

// CreateLeaseInput represents the create lease input
type CreateLeaseInput struct {
	TenantID          uuid.UUID
	ShopID            uuid.UUID
	StartDate         time.Time
	EndDate           *time.Time
	MonthlyRent       decimal.Decimal
	SecurityDeposit   decimal.Decimal
	OpeningDueBalance decimal.Decimal
	Notes             *string
}

// CreateLease creates a lease and marks the shop occupied in one transaction.
// A shop can hold at most one non-terminated lease.
func (s *LeaseService) CreateLease(ctx context.Context, input *CreateLeaseInput) (*entity.Lease, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}

	shop, err := s.shopRepo.GetByID(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}

	active, err := s.leaseRepo.GetActiveByShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperror.ErrShopOccupied
	}

	if input.MonthlyRent.IsNegative() || input.SecurityDeposit.IsNegative() {
		return nil, apperror.NewBadRequestError("Rent and deposit cannot be negative")
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, apperror.NewBadRequestError("End date cannot precede start date")
	}

	lease := &entity.Lease{
		TenantID:          input.TenantID,
		ShopID:            input.ShopID,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		MonthlyRent:       input.MonthlyRent,
		SecurityDeposit:   input.SecurityDeposit,
		OpeningDueBalance: input.OpeningDueBalance,
		Status:            enum.LeaseStatusActive,
		Notes:             input.Notes,
	}

	if err := s.leaseRepo.CreateWithShopOccupied(ctx, lease, shop); err != nil {
		return nil, err
	}
	return lease, nil
}

// GetLease retrieves a lease by ID with its status derived from the end date
func (s *LeaseService) GetLease(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, apperror.NewNotFoundError("Lease")
	}
	lease.Status = ledger.DeriveLeaseStatus(lease, time.Now())
	return lease, nil
}

// ListLeases lists leases with filters, deriving each status on the way out
func (s *LeaseService) ListLeases(ctx context.Context, params *repository.LeaseFilterParams) (*pagination.PaginatedResult[entity.Lease], error) {
	leases, total, err := s.leaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range leases {
		leases[i].Status = ledger.DeriveLeaseStatus(&leases[i], now)
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(leases, pag), nil
}

// AdjustRentInput represents the rent adjustment input
type AdjustRentInput struct {
	LeaseID       uuid.UUID
	NewRent       decimal.Decimal
	EffectiveDate time.Time
}

// AdjustRent records a prospective rent change and updates the lease's rent.
// Invoices already issued keep their original amounts.
func (s *LeaseService) AdjustRent(ctx context.Context, input *AdjustRentInput) (*entity.RentAdjustment, error) {
	lease, err := s.leaseRepo.GetByID(ctx, input.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, apperror.NewNotFoundError("Lease")
	}
	if lease.Status.IsTerminated() {
		return nil, apperror.ErrLeaseTerminated
	}
	if !input.NewRent.IsPositive() {
		return nil, apperror.NewBadRequestError("New rent must be positive")
	}

	adjustment := &entity.RentAdjustment{
		LeaseID:          lease.ID,
		PreviousRent:     lease.MonthlyRent,
		NewRent:          input.NewRent,
		AdjustmentAmount: input.NewRent.Sub(lease.MonthlyRent),
		EffectiveDate:    input.EffectiveDate,
	}

	if err := s.adjustmentRepo.CreateWithLeaseRent(ctx, adjustment, lease); err != nil {
		return nil, err
	}
	return adjustment, nil
}

// LedgerOutput bundles the computed ledger with its lease
type LedgerOutput struct {
	Lease  *entity.Lease      `json:"lease"`
	Ledger ledger.LeaseLedger `json:"ledger"`
}

// GetLedger backfills any missing invoices and computes the lease's
// month-by-month ledger as of now
func (s *LeaseService) GetLedger(ctx context.Context, id uuid.UUID) (*LedgerOutput, error) {
	return s.getLedgerAsOf(ctx, id, time.Now())
}

func (s *LeaseService) getLedgerAsOf(ctx context.Context, id uuid.UUID, asOf time.Time) (*LedgerOutput, error) {
	lease, err := s.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceService.EnsureUpToDate(ctx, lease, asOf)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByLease(ctx, id)
	if err != nil {
		return nil, err
	}
	adjustments, err := s.adjustmentRepo.ListByLease(ctx, id)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByLease(ctx, id)
	if err != nil {
		return nil, err
	}

	computed := ledger.ComputeLeaseLedger(lease, invoices, payments, adjustments, asOf)
	ledger.AddChargeableExpenses(&computed, expenses)

	return &LedgerOutput{Lease: lease, Ledger: computed}, nil
}

// ListInvoices returns a lease's rent invoices, backfilling any missing
// months first
func (s *LeaseService) ListInvoices(ctx context.Context, id uuid.UUID) ([]entity.RentInvoice, error) {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, apperror.NewNotFoundError("Lease")
	}
	return s.invoiceService.EnsureUpToDate(ctx, lease, time.Now())
}

// SettlementAdjustments carries the user-agreed termination adjustments
type SettlementAdjustments struct {
	TenantAdjustment   decimal.Decimal
	OwnerAdjustment    decimal.Decimal
	UseSecurityDeposit bool
}

// PreviewSettlement computes the termination settlement without writing
// anything back
func (s *LeaseService) PreviewSettlement(ctx context.Context, id uuid.UUID, adj *SettlementAdjustments) (*ledger.Settlement, error) {
	out, err := s.GetLedger(ctx, id)
	if err != nil {
		return nil, err
	}

	settlement := ledger.ComputeSettlement(ledger.SettlementInput{
		CurrentDue:          out.Ledger.Summary.GrandTotalOutstanding,
		SecurityDeposit:     out.Lease.SecurityDeposit,
		SecurityDepositUsed: out.Lease.SecurityDepositUsed,
		TenantAdjustment:    adj.TenantAdjustment,
		OwnerAdjustment:     adj.OwnerAdjustment,
		UseSecurityDeposit:  adj.UseSecurityDeposit,
	})
	return &settlement, nil
}

// TerminateOutput bundles the terminated lease with its final settlement
type TerminateOutput struct {
	Lease      *entity.Lease      `json:"lease"`
	Settlement *ledger.Settlement `json:"settlement"`
}

// Terminate ends a lease: the settlement is computed, any deposit usage is
// persisted, and the lease is closed with its shop flipped vacant in one
// transaction. Termination is terminal and cannot be repeated.
func (s *LeaseService) Terminate(ctx context.Context, id uuid.UUID, adj *SettlementAdjustments) (*TerminateOutput, error) {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, apperror.NewNotFoundError("Lease")
	}
	if lease.Status.IsTerminated() {
		return nil, apperror.ErrLeaseTerminated
	}

	shop, err := s.shopRepo.GetByID(ctx, lease.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}

	settlement, err := s.PreviewSettlement(ctx, id, adj)
	if err != nil {
		return nil, err
	}

	if adj.UseSecurityDeposit {
		lease.SecurityDepositUsed = lease.SecurityDepositUsed.Add(settlement.DepositApplied)
	}

	if err := s.leaseRepo.Terminate(ctx, lease, shop); err != nil {
		return nil, err
	}

	return &TerminateOutput{Lease: lease, Settlement: settlement}, nil
}
