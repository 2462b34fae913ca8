package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense-related operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	ownerRepo   repository.OwnerRepository
	leaseRepo   repository.LeaseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, ownerRepo repository.OwnerRepository, leaseRepo repository.LeaseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, ownerRepo: ownerRepo, leaseRepo: leaseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	ExpenseType string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Allocation  enum.ExpenseAllocation
	OwnerID     *uuid.UUID
	LeaseID     *uuid.UUID
	Notes       *string
}

// CreateExpense creates an expense. Owner-allocated expenses name an owner;
// common expenses are split across all owners in reporting. A lease ID makes
// the expense chargeable to that lease's tenant.
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Expense amount must be positive")
	}

	switch input.Allocation {
	case enum.ExpenseAllocationOwner:
		if input.OwnerID == nil {
			return nil, apperror.NewBadRequestError("Owner-allocated expenses require an owner")
		}
		owner, err := s.ownerRepo.GetByID(ctx, *input.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, apperror.NewNotFoundError("Owner")
		}
	case enum.ExpenseAllocationCommon:
		if input.OwnerID != nil {
			return nil, apperror.NewBadRequestError("Common expenses cannot name an owner")
		}
	}

	if input.LeaseID != nil {
		lease, err := s.leaseRepo.GetByID(ctx, *input.LeaseID)
		if err != nil {
			return nil, err
		}
		if lease == nil {
			return nil, apperror.NewNotFoundError("Lease")
		}
	}

	expense := &entity.Expense{
		ExpenseType: input.ExpenseType,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
		Allocation:  input.Allocation,
		OwnerID:     input.OwnerID,
		LeaseID:     input.LeaseID,
		Notes:       input.Notes,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses lists expenses with filters and pagination
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	ID          uuid.UUID
	ExpenseType *string
	Amount      *decimal.Decimal
	ExpenseDate *time.Time
	Notes       *string
}

// UpdateExpense updates an expense's type, amount, date or notes. Allocation
// is fixed at creation.
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.ExpenseType != nil {
		expense.ExpenseType = *input.ExpenseType
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, apperror.NewBadRequestError("Expense amount must be positive")
		}
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Notes != nil {
		expense.Notes = input.Notes
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}
