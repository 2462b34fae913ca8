package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// ExpenseFilterParams narrows expense listings
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Allocation *enum.ExpenseAllocation
	OwnerID    *uuid.UUID
}

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
	ListByLease(ctx context.Context, leaseID uuid.UUID) ([]entity.Expense, error)
	// ListForStatement returns an owner's sole expenses and all common expenses
	ListForStatement(ctx context.Context, ownerID uuid.UUID) ([]entity.Expense, error)
}
