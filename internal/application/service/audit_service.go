package service

import (
	"context"

	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

// AuditService reads the deletion audit trail
type AuditService struct {
	deletionLogRepo repository.DeletionLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(deletionLogRepo repository.DeletionLogRepository) *AuditService {
	return &AuditService{deletionLogRepo: deletionLogRepo}
}

// ListDeletionLogs lists deletion log entries, optionally by entity type
func (s *AuditService) ListDeletionLogs(ctx context.Context, params *pagination.PaginationParams, entityType string) (*pagination.PaginatedResult[entity.DeletionLog], error) {
	logs, total, err := s.deletionLogRepo.List(ctx, params, entityType)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
