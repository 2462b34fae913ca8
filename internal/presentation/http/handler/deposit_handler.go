package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// DepositHandler handles bank deposit HTTP requests
type DepositHandler struct {
	depositService *service.DepositService
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(depositService *service.DepositService) *DepositHandler {
	return &DepositHandler{depositService: depositService}
}

// Create handles recording a bank deposit
func (h *DepositHandler) Create(c *gin.Context) {
	var req struct {
		OwnerID     uuid.UUID       `json:"owner_id" binding:"required"`
		Amount      decimal.Decimal `json:"amount" binding:"required"`
		DepositDate string          `json:"deposit_date" binding:"required"`
		Notes       *string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	depositDate, err := time.Parse(dateLayout, req.DepositDate)
	if err != nil {
		response.BadRequest(c, "Invalid deposit date")
		return
	}

	deposit, err := h.depositService.CreateDeposit(c.Request.Context(), &service.CreateDepositInput{
		OwnerID:     req.OwnerID,
		Amount:      req.Amount,
		DepositDate: depositDate,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Deposit recorded successfully", deposit)
}

// List handles listing deposits
func (h *DepositHandler) List(c *gin.Context) {
	var ownerID *uuid.UUID
	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		parsed, err := uuid.Parse(ownerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid owner ID")
			return
		}
		ownerID = &parsed
	}

	result, err := h.depositService.ListDeposits(c.Request.Context(), paginationFromQuery(c), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deposits retrieved successfully", result)
}

// Delete handles deleting a deposit record
func (h *DepositHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deposit ID")
		return
	}

	if err := h.depositService.DeleteDeposit(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
