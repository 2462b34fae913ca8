package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// OwnerService handles owner-related operations
type OwnerService struct {
	ownerRepo   repository.OwnerRepository
	depositRepo repository.BankDepositRepository
	expenseRepo repository.ExpenseRepository
	shopRepo    repository.ShopRepository
}

// NewOwnerService creates a new owner service
func NewOwnerService(
	ownerRepo repository.OwnerRepository,
	depositRepo repository.BankDepositRepository,
	expenseRepo repository.ExpenseRepository,
	shopRepo repository.ShopRepository,
) *OwnerService {
	return &OwnerService{
		ownerRepo:   ownerRepo,
		depositRepo: depositRepo,
		expenseRepo: expenseRepo,
		shopRepo:    shopRepo,
	}
}

// CreateOwnerInput represents the create owner input
type CreateOwnerInput struct {
	Name          string
	Phone         *string
	Email         *string
	Address       *string
	BankName      *string
	AccountHolder *string
	AccountNumber *string
}

// CreateOwner creates a new owner
func (s *OwnerService) CreateOwner(ctx context.Context, input *CreateOwnerInput) (*entity.Owner, error) {
	owner := &entity.Owner{
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		BankName:      input.BankName,
		AccountHolder: input.AccountHolder,
		AccountNumber: input.AccountNumber,
	}

	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// GetOwner retrieves an owner by ID
func (s *OwnerService) GetOwner(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NewNotFoundError("Owner")
	}
	return owner, nil
}

// ListOwners lists owners with pagination and optional search
func (s *OwnerService) ListOwners(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Owner], error) {
	owners, total, err := s.ownerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(owners, pag), nil
}

// UpdateOwnerInput represents the update owner input
type UpdateOwnerInput struct {
	ID            uuid.UUID
	Name          *string
	Phone         *string
	Email         *string
	Address       *string
	BankName      *string
	AccountHolder *string
	AccountNumber *string
}

// UpdateOwner updates an owner
func (s *OwnerService) UpdateOwner(ctx context.Context, input *UpdateOwnerInput) (*entity.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NewNotFoundError("Owner")
	}

	if input.Name != nil {
		owner.Name = *input.Name
	}
	if input.Phone != nil {
		owner.Phone = input.Phone
	}
	if input.Email != nil {
		owner.Email = input.Email
	}
	if input.Address != nil {
		owner.Address = input.Address
	}
	if input.BankName != nil {
		owner.BankName = input.BankName
	}
	if input.AccountHolder != nil {
		owner.AccountHolder = input.AccountHolder
	}
	if input.AccountNumber != nil {
		owner.AccountNumber = input.AccountNumber
	}

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// DeleteOwner deletes an owner. Owners with shops still assigned cannot be
// deleted.
func (s *OwnerService) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if owner == nil {
		return apperror.NewNotFoundError("Owner")
	}

	shops, _, err := s.shopRepo.List(ctx, &repository.ShopFilterParams{
		Pagination: pagination.DefaultPagination(),
		OwnerID:    &id,
	})
	if err != nil {
		return err
	}
	if len(shops) > 0 {
		return apperror.NewConflictError("Owner still has shops assigned")
	}

	return s.ownerRepo.Delete(ctx, id)
}
