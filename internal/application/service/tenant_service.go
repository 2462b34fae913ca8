package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// TenantService handles tenant-related operations
type TenantService struct {
	tenantRepo  repository.TenantRepository
	leaseRepo   repository.LeaseRepository
	invoiceRepo repository.RentInvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(
	tenantRepo repository.TenantRepository,
	leaseRepo repository.LeaseRepository,
	invoiceRepo repository.RentInvoiceRepository,
	paymentRepo repository.PaymentRepository,
) *TenantService {
	return &TenantService{
		tenantRepo:  tenantRepo,
		leaseRepo:   leaseRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// CreateTenantInput represents the create tenant input
type CreateTenantInput struct {
	Name              string
	Phone             *string
	Email             *string
	NationalID        *string
	Address           *string
	OpeningDueBalance decimal.Decimal
}

// CreateTenant creates a new tenant
func (s *TenantService) CreateTenant(ctx context.Context, input *CreateTenantInput) (*entity.Tenant, error) {
	tenant := &entity.Tenant{
		Name:              input.Name,
		Phone:             input.Phone,
		Email:             input.Email,
		NationalID:        input.NationalID,
		Address:           input.Address,
		OpeningDueBalance: input.OpeningDueBalance,
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	return tenant, nil
}

// ListTenants lists tenants with pagination and optional search
func (s *TenantService) ListTenants(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Tenant], error) {
	tenants, total, err := s.tenantRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tenants, pag), nil
}

// UpdateTenantInput represents the update tenant input
type UpdateTenantInput struct {
	ID                uuid.UUID
	Name              *string
	Phone             *string
	Email             *string
	NationalID        *string
	Address           *string
	OpeningDueBalance *decimal.Decimal
}

// UpdateTenant updates a tenant
func (s *TenantService) UpdateTenant(ctx context.Context, input *UpdateTenantInput) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}

	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.Phone != nil {
		tenant.Phone = input.Phone
	}
	if input.Email != nil {
		tenant.Email = input.Email
	}
	if input.NationalID != nil {
		tenant.NationalID = input.NationalID
	}
	if input.Address != nil {
		tenant.Address = input.Address
	}
	if input.OpeningDueBalance != nil {
		tenant.OpeningDueBalance = *input.OpeningDueBalance
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// DeleteTenant deletes a tenant unless they hold a non-terminated lease
func (s *TenantService) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return apperror.NewNotFoundError("Tenant")
	}

	leases, err := s.leaseRepo.ListByTenant(ctx, id)
	if err != nil {
		return err
	}
	for i := range leases {
		if !leases[i].Status.IsTerminated() {
			return apperror.NewConflictError("Tenant still holds an active lease")
		}
	}

	return s.tenantRepo.Delete(ctx, id)
}

// TenantDuesOutput is one tenant's aggregate due position across leases
type TenantDuesOutput struct {
	Tenant     *entity.Tenant   `json:"tenant"`
	TotalDue   decimal.Decimal  `json:"total_due"`
	LeaseCount int              `json:"lease_count"`
	Leases     []ledger.Summary `json:"leases"`
}

// GetTenantDues computes a tenant's aggregate dues across all their leases,
// including terminated ones with unpaid balances
func (s *TenantService) GetTenantDues(ctx context.Context, id uuid.UUID, asOf time.Time) (*TenantDuesOutput, error) {
	tenant, err := s.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	leases, err := s.leaseRepo.ListByTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries := make([]ledger.Summary, 0, len(leases))
	for i := range leases {
		lease := &leases[i]
		invoices, err := s.invoiceRepo.ListByLease(ctx, lease.ID)
		if err != nil {
			return nil, err
		}
		payments, err := s.paymentRepo.ListByLease(ctx, lease.ID)
		if err != nil {
			return nil, err
		}
		computed := ledger.ComputeLeaseLedger(lease, invoices, payments, nil, asOf)
		summaries = append(summaries, computed.Summary)
	}

	return &TenantDuesOutput{
		Tenant:     tenant,
		TotalDue:   ledger.TenantDues(tenant, summaries),
		LeaseCount: len(leases),
		Leases:     summaries,
	}, nil
}
