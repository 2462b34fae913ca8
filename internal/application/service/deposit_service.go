package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// DepositService handles bank deposit records
type DepositService struct {
	depositRepo repository.BankDepositRepository
	ownerRepo   repository.OwnerRepository
}

// NewDepositService creates a new deposit service
func NewDepositService(depositRepo repository.BankDepositRepository, ownerRepo repository.OwnerRepository) *DepositService {
	return &DepositService{depositRepo: depositRepo, ownerRepo: ownerRepo}
}

// CreateDepositInput represents the create deposit input
type CreateDepositInput struct {
	OwnerID     uuid.UUID
	Amount      decimal.Decimal
	DepositDate time.Time
	Notes       *string
}

// CreateDeposit records money moved to an owner's bank account
func (s *DepositService) CreateDeposit(ctx context.Context, input *CreateDepositInput) (*entity.BankDeposit, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Deposit amount must be positive")
	}

	owner, err := s.ownerRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NewNotFoundError("Owner")
	}

	deposit := &entity.BankDeposit{
		OwnerID:     input.OwnerID,
		Amount:      input.Amount,
		DepositDate: input.DepositDate,
		Notes:       input.Notes,
	}

	if err := s.depositRepo.Create(ctx, deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

// ListDeposits lists deposits, optionally for one owner
func (s *DepositService) ListDeposits(ctx context.Context, params *pagination.PaginationParams, ownerID *uuid.UUID) (*pagination.PaginatedResult[entity.BankDeposit], error) {
	deposits, total, err := s.depositRepo.List(ctx, params, ownerID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(deposits, pag), nil
}

// DeleteDeposit deletes a deposit record
func (s *DepositService) DeleteDeposit(ctx context.Context, id uuid.UUID) error {
	deposit, err := s.depositRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if deposit == nil {
		return apperror.NewNotFoundError("Deposit")
	}
	return s.depositRepo.Delete(ctx, id)
}
