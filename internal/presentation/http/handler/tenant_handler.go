package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// TenantHandler handles tenant-related HTTP requests
type TenantHandler struct {
	tenantService *service.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create handles creating a tenant
func (h *TenantHandler) Create(c *gin.Context) {
	var req struct {
		Name              string           `json:"name" binding:"required,min=2,max=255"`
		Phone             *string          `json:"phone"`
		Email             *string          `json:"email"`
		NationalID        *string          `json:"national_id"`
		Address           *string          `json:"address"`
		OpeningDueBalance *decimal.Decimal `json:"opening_due_balance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	opening := decimal.Zero
	if req.OpeningDueBalance != nil {
		opening = *req.OpeningDueBalance
	}

	tenant, err := h.tenantService.CreateTenant(scopedContext(c), &service.CreateTenantInput{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		NationalID:        req.NationalID,
		Address:           req.Address,
		OpeningDueBalance: opening,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tenant created successfully", tenant)
}

// Get handles getting a single tenant
func (h *TenantHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenantService.GetTenant(scopedContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tenant retrieved successfully", tenant)
}

// List handles listing tenants
func (h *TenantHandler) List(c *gin.Context) {
	result, err := h.tenantService.ListTenants(scopedContext(c), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tenants retrieved successfully", result)
}

// Update handles updating a tenant
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req struct {
		Name              *string          `json:"name"`
		Phone             *string          `json:"phone"`
		Email             *string          `json:"email"`
		NationalID        *string          `json:"national_id"`
		Address           *string          `json:"address"`
		OpeningDueBalance *decimal.Decimal `json:"opening_due_balance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.tenantService.UpdateTenant(scopedContext(c), &service.UpdateTenantInput{
		ID:                id,
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		NationalID:        req.NationalID,
		Address:           req.Address,
		OpeningDueBalance: req.OpeningDueBalance,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tenant updated successfully", tenant)
}

// Delete handles deleting a tenant
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	if err := h.tenantService.DeleteTenant(scopedContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Dues handles the tenant dues summary across all their leases
func (h *TenantHandler) Dues(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	dues, err := h.tenantService.GetTenantDues(scopedContext(c), id, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tenant dues retrieved successfully", dues)
}
