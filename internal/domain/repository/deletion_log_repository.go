package repository

import (
	"context"

	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// DeletionLogRepository reads the deletion audit trail. Entries are written
// in the same transaction as the delete they record, by the owning
// repository.
type DeletionLogRepository interface {
	List(ctx context.Context, params *pagination.PaginationParams, entityType string) ([]entity.DeletionLog, int64, error)
}
