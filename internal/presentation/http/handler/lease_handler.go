package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// LeaseHandler handles lease-related HTTP requests
type LeaseHandler struct {
	leaseService *service.LeaseService
}

// NewLeaseHandler creates a new lease handler
func NewLeaseHandler(leaseService *service.LeaseService) *LeaseHandler {
	return &LeaseHandler{leaseService: leaseService}
}

const dateLayout = "2006-01-02"

// Create handles creating a lease
func (h *LeaseHandler) Create(c *gin.Context) {
	var req struct {
		TenantID          uuid.UUID        `json:"tenant_id" binding:"required"`
		ShopID            uuid.UUID        `json:"shop_id" binding:"required"`
		StartDate         string           `json:"start_date" binding:"required"`
		EndDate           *string          `json:"end_date"`
		MonthlyRent       decimal.Decimal  `json:"monthly_rent" binding:"required"`
		SecurityDeposit   *decimal.Decimal `json:"security_deposit"`
		OpeningDueBalance *decimal.Decimal `json:"opening_due_balance"`
		Notes             *string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start date")
		return
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		endDate = &parsed
	}

	deposit := decimal.Zero
	if req.SecurityDeposit != nil {
		deposit = *req.SecurityDeposit
	}
	opening := decimal.Zero
	if req.OpeningDueBalance != nil {
		opening = *req.OpeningDueBalance
	}

	lease, err := h.leaseService.CreateLease(scopedContext(c), &service.CreateLeaseInput{
		TenantID:          req.TenantID,
		ShopID:            req.ShopID,
		StartDate:         startDate,
		EndDate:           endDate,
		MonthlyRent:       req.MonthlyRent,
		SecurityDeposit:   deposit,
		OpeningDueBalance: opening,
		Notes:             req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lease created successfully", lease)
}

// Get handles getting a single lease
func (h *LeaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lease ID")
		return
	}

	lease, err := h.leaseService.GetLease(scopedContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lease retrieved successfully", lease)
}

// List handles listing leases with filters
func (h *LeaseHandler) List(c *gin.Context) {
	params := &repository.LeaseFilterParams{
		Pagination: paginationFromQuery(c),
	}

	if tenantIDStr := c.Query("tenant_id"); tenantIDStr != "" {
		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid tenant ID")
			return
		}
		params.TenantID = &tenantID
	}
	if shopIDStr := c.Query("shop_id"); shopIDStr != "" {
		shopID, err := uuid.Parse(shopIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid shop ID")
			return
		}
		params.ShopID = &shopID
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := enum.ParseLeaseStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Invalid status")
			return
		}
		params.Status = &status
	}

	result, err := h.leaseService.ListLeases(scopedContext(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leases retrieved successfully", result)
}

// AdjustRent handles a prospective rent change
func (h *LeaseHandler) AdjustRent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lease ID")
		return
	}

	var req struct {
		NewRent       decimal.Decimal `json:"new_rent" binding:"required"`
		EffectiveDate string          `json:"effective_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		response.BadRequest(c, "Invalid effective date")
		return
	}

	adjustment, err := h.leaseService.AdjustRent(scopedContext(c), &service.AdjustRentInput{
		LeaseID:       id,
		NewRent:       req.NewRent,
		EffectiveDate: effectiveDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Rent adjusted successfully", adjustment)
}

// Ledger handles the month-by-month lease ledger
func (h *LeaseHandler) Ledger(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lease ID")
		return
	}

	out, err := h.leaseService.GetLedger(scopedContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger retrieved successfully", out)
}

// Invoices handles listing a lease's rent invoices
func (h *LeaseHandler) Invoices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lease ID")
		return
	}

	invoices, err := h.leaseService.ListInvoices(scopedContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices retrieved successfully", invoices)
}

type settlementRequest struct {
	TenantAdjustment   *decimal.Decimal `json:"tenant_adjustment"`
	OwnerAdjustment    *decimal.Decimal `json:"owner_adjustment"`
	UseSecurityDeposit bool             `json:"use_security_deposit"`
}

func (r *settlementRequest) toAdjustments() *service.SettlementAdjustments {
	adj := &service.SettlementAdjustments{
		TenantAdjustment:   decimal.Zero,
		OwnerAdjustment:    decimal.Zero,
		UseSecurityDeposit: r.UseSecurityDeposit,
	}
	if r.TenantAdjustment != nil {
		adj.TenantAdjustment = *r.TenantAdjustment
	}
	if r.OwnerAdjustment != nil {
		adj.OwnerAdjustment = *r.OwnerAdjustment
	}
	return adj
}

// PreviewSettlement handles the settlement dry run
func (h *LeaseHandler) PreviewSettlement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lease ID")
		return
	}

	var req settlementRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settlement, err := h.leaseService.PreviewSettlement(scopedContext(c), id, req.toAdjustments())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settlement computed successfully", settlement)
}

// Terminate handles lease termination with settlement
func (h *LeaseHandler) Terminate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lease ID")
		return
	}

	var req settlementRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.leaseService.Terminate(scopedContext(c), id, req.toAdjustments())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lease terminated successfully", out)
}
