package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// ShopService handles shop-related operations
type ShopService struct {
	shopRepo  repository.ShopRepository
	ownerRepo repository.OwnerRepository
	leaseRepo repository.LeaseRepository
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository, ownerRepo repository.OwnerRepository, leaseRepo repository.LeaseRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo, ownerRepo: ownerRepo, leaseRepo: leaseRepo}
}

// CreateShopInput represents the create shop input
type CreateShopInput struct {
	ShopNumber       string
	Floor            enum.ShopFloor
	SubedariCategory *enum.SubedariCategory
	OwnershipType    enum.OwnershipType
	OwnerID          *uuid.UUID
	Description      *string
}

// CreateShop creates a new shop. Subedari units carry a category; sole
// ownership requires an owner.
func (s *ShopService) CreateShop(ctx context.Context, input *CreateShopInput) (*entity.Shop, error) {
	existing, err := s.shopRepo.GetByShopNumber(ctx, input.ShopNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Shop number already exists")
	}

	if input.Floor == enum.ShopFloorSubedari && input.SubedariCategory == nil {
		return nil, apperror.NewBadRequestError("Subedari units require a category")
	}
	if input.Floor != enum.ShopFloorSubedari && input.SubedariCategory != nil {
		return nil, apperror.NewBadRequestError("Only subedari units carry a category")
	}

	if input.OwnershipType == enum.OwnershipTypeSole {
		if input.OwnerID == nil {
			return nil, apperror.NewBadRequestError("Sole ownership requires an owner")
		}
		owner, err := s.ownerRepo.GetByID(ctx, *input.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, apperror.NewNotFoundError("Owner")
		}
	} else if input.OwnerID != nil {
		return nil, apperror.NewBadRequestError("Common-ownership shops cannot have an owner")
	}

	shop := &entity.Shop{
		ShopNumber:       input.ShopNumber,
		Floor:            input.Floor,
		SubedariCategory: input.SubedariCategory,
		Status:           enum.ShopStatusVacant,
		OwnershipType:    input.OwnershipType,
		OwnerID:          input.OwnerID,
		Description:      input.Description,
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// GetShop retrieves a shop by ID
func (s *ShopService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}
	return shop, nil
}

// ListShops lists shops with filters and pagination
func (s *ShopService) ListShops(ctx context.Context, params *repository.ShopFilterParams) (*pagination.PaginatedResult[entity.Shop], error) {
	shops, total, err := s.shopRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(shops, pag), nil
}

// UpdateShopInput represents the update shop input
type UpdateShopInput struct {
	ID               uuid.UUID
	ShopNumber       *string
	Floor            *enum.ShopFloor
	SubedariCategory *enum.SubedariCategory
	OwnershipType    *enum.OwnershipType
	OwnerID          *uuid.UUID
	Description      *string
}

// UpdateShop updates a shop. Occupancy status is never set directly; it
// follows lease creation and termination.
func (s *ShopService) UpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}

	if input.ShopNumber != nil && *input.ShopNumber != shop.ShopNumber {
		existing, err := s.shopRepo.GetByShopNumber(ctx, *input.ShopNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != shop.ID {
			return nil, apperror.NewConflictError("Shop number already exists")
		}
		shop.ShopNumber = *input.ShopNumber
	}
	if input.Floor != nil {
		shop.Floor = *input.Floor
	}
	if input.SubedariCategory != nil {
		shop.SubedariCategory = input.SubedariCategory
	}
	if shop.Floor != enum.ShopFloorSubedari {
		shop.SubedariCategory = nil
	}
	if input.OwnershipType != nil {
		shop.OwnershipType = *input.OwnershipType
	}
	if input.OwnerID != nil {
		owner, err := s.ownerRepo.GetByID(ctx, *input.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, apperror.NewNotFoundError("Owner")
		}
		shop.OwnerID = input.OwnerID
	}
	if shop.OwnershipType == enum.OwnershipTypeCommon {
		shop.OwnerID = nil
	}
	if input.Description != nil {
		shop.Description = input.Description
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// DeleteShop deletes a shop unless it has an active lease
func (s *ShopService) DeleteShop(ctx context.Context, id uuid.UUID) error {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if shop == nil {
		return apperror.NewNotFoundError("Shop")
	}

	lease, err := s.leaseRepo.GetActiveByShop(ctx, id)
	if err != nil {
		return err
	}
	if lease != nil {
		return apperror.ErrShopOccupied
	}

	return s.shopRepo.Delete(ctx, id)
}
