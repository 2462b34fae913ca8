package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
	"gorm.io/gorm"
)

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) domainRepo.OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var owner entity.Owner
	err := r.db.WithContext(ctx).First(&owner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &owner, err
}

func (r *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

func (r *ownerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Owner{}, "id = ?", id).Error
}

func (r *ownerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Owner, int64, error) {
	var owners []entity.Owner
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Owner{})

	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&owners).Error

	return owners, total, err
}

func (r *ownerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Owner{}).Count(&total).Error
	return total, err
}

type bankDepositRepository struct {
	db *gorm.DB
}

// NewBankDepositRepository creates a new bank deposit repository
func NewBankDepositRepository(db *gorm.DB) domainRepo.BankDepositRepository {
	return &bankDepositRepository{db: db}
}

func (r *bankDepositRepository) Create(ctx context.Context, deposit *entity.BankDeposit) error {
	return r.db.WithContext(ctx).Create(deposit).Error
}

func (r *bankDepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BankDeposit, error) {
	var deposit entity.BankDeposit
	err := r.db.WithContext(ctx).First(&deposit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &deposit, err
}

func (r *bankDepositRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BankDeposit{}, "id = ?", id).Error
}

func (r *bankDepositRepository) List(ctx context.Context, params *pagination.PaginationParams, ownerID *uuid.UUID) ([]entity.BankDeposit, int64, error) {
	var deposits []entity.BankDeposit
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BankDeposit{})
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("deposit_date DESC").
		Find(&deposits).Error

	return deposits, total, err
}

func (r *bankDepositRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.BankDeposit, error) {
	var deposits []entity.BankDeposit
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("deposit_date DESC").
		Find(&deposits).Error
	return deposits, err
}
