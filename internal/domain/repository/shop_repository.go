package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// ShopFilterParams narrows shop listings
type ShopFilterParams struct {
	Pagination *pagination.PaginationParams
	Floor      *enum.ShopFloor
	Status     *enum.ShopStatus
	OwnerID    *uuid.UUID
	Search     string
}

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	GetByShopNumber(ctx context.Context, shopNumber string) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ShopFilterParams) ([]entity.Shop, int64, error)
	// ListAll returns every shop, used by the occupancy projection
	ListAll(ctx context.Context) ([]entity.Shop, error)
}
