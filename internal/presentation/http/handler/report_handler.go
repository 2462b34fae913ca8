package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
)

// ReportHandler handles owner statement HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
	auditService  *service.AuditService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, auditService *service.AuditService) *ReportHandler {
	return &ReportHandler{reportService: reportService, auditService: auditService}
}

// OwnerStatement handles the owner statement. Owner users can only read
// their own statement.
func (h *ReportHandler) OwnerStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	if !IsSuperAdmin(c) {
		ownerID := GetOwnerID(c)
		if ownerID == nil || *ownerID != id {
			response.Forbidden(c, "Statements are restricted to your own owner record")
			return
		}
	}

	display := c.Query("display_currency") == "true"

	statement, err := h.reportService.GetOwnerStatement(c.Request.Context(), id, display)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Owner statement retrieved successfully", statement)
}

// ExportOwnerStatement handles the xlsx export of the owner statement
func (h *ReportHandler) ExportOwnerStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	if !IsSuperAdmin(c) {
		ownerID := GetOwnerID(c)
		if ownerID == nil || *ownerID != id {
			response.Forbidden(c, "Statements are restricted to your own owner record")
			return
		}
	}

	display := c.Query("display_currency") == "true"

	data, filename, err := h.reportService.ExportOwnerStatement(c.Request.Context(), id, display)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// DeletionLogs handles the deletion audit trail listing. Super-admin only.
func (h *ReportHandler) DeletionLogs(c *gin.Context) {
	if !IsSuperAdmin(c) {
		response.Forbidden(c, "Only super admins can read the audit trail")
		return
	}

	result, err := h.auditService.ListDeletionLogs(c.Request.Context(), paginationFromQuery(c), c.Query("entity_type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deletion logs retrieved successfully", result)
}
