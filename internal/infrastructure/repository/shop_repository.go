package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).Scopes(ShopOwnerScope(ctx)).First(&shop, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) GetByShopNumber(ctx context.Context, shopNumber string) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).First(&shop, "shop_number = ?", shopNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

func (r *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Shop{}, "id = ?", id).Error
}

func (r *shopRepository) List(ctx context.Context, params *domainRepo.ShopFilterParams) ([]entity.Shop, int64, error) {
	var shops []entity.Shop
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Shop{}).Scopes(ShopOwnerScope(ctx))

	if params.Floor != nil {
		query = query.Where("floor = ?", *params.Floor)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.OwnerID != nil {
		query = query.Where("owner_id = ?", *params.OwnerID)
	}
	if params.Search != "" {
		query = query.Where("shop_number ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("floor ASC, shop_number ASC").
		Find(&shops).Error

	return shops, total, err
}

func (r *shopRepository) ListAll(ctx context.Context) ([]entity.Shop, error) {
	var shops []entity.Shop
	err := r.db.WithContext(ctx).Scopes(ShopOwnerScope(ctx)).
		Order("floor ASC, shop_number ASC").
		Find(&shops).Error
	return shops, err
}
