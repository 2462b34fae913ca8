package repository

import (
	"context"

	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
	"gorm.io/gorm"
)

type deletionLogRepository struct {
	db *gorm.DB
}

// NewDeletionLogRepository creates a new deletion log repository
func NewDeletionLogRepository(db *gorm.DB) domainRepo.DeletionLogRepository {
	return &deletionLogRepository{db: db}
}

func (r *deletionLogRepository) List(ctx context.Context, params *pagination.PaginationParams, entityType string) ([]entity.DeletionLog, int64, error) {
	var logs []entity.DeletionLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DeletionLog{})
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&logs).Error

	return logs, total, err
}
