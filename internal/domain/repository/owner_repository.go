package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// OwnerRepository defines the interface for owner data operations
type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)
	Update(ctx context.Context, owner *entity.Owner) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Owner, int64, error)
	// Count returns the number of owners, used for the equal common-expense split
	Count(ctx context.Context) (int64, error)
}

// BankDepositRepository defines the interface for bank deposit data operations
type BankDepositRepository interface {
	Create(ctx context.Context, deposit *entity.BankDeposit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BankDeposit, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, ownerID *uuid.UUID) ([]entity.BankDeposit, int64, error)
	// ListByOwner returns every deposit for one owner, newest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.BankDeposit, error)
}
