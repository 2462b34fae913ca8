package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles creating an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req struct {
		ExpenseType string                 `json:"expense_type" binding:"required,max=255"`
		Amount      decimal.Decimal        `json:"amount" binding:"required"`
		ExpenseDate string                 `json:"expense_date" binding:"required"`
		Allocation  enum.ExpenseAllocation `json:"allocation"`
		OwnerID     *uuid.UUID             `json:"owner_id"`
		LeaseID     *uuid.UUID             `json:"lease_id"`
		Notes       *string                `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expenseDate, err := time.Parse(dateLayout, req.ExpenseDate)
	if err != nil {
		response.BadRequest(c, "Invalid expense date")
		return
	}

	expense, err := h.expenseService.CreateExpense(scopedContext(c), &service.CreateExpenseInput{
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Allocation:  req.Allocation,
		OwnerID:     req.OwnerID,
		LeaseID:     req.LeaseID,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// Get handles getting a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(scopedContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// List handles listing expenses with filters
func (h *ExpenseHandler) List(c *gin.Context) {
	params := &repository.ExpenseFilterParams{
		Pagination: paginationFromQuery(c),
	}

	if allocStr := c.Query("allocation"); allocStr != "" {
		alloc, ok := enum.ParseExpenseAllocation(allocStr)
		if !ok {
			response.BadRequest(c, "Invalid allocation")
			return
		}
		params.Allocation = &alloc
	}
	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid owner ID")
			return
		}
		params.OwnerID = &ownerID
	}

	result, err := h.expenseService.ListExpenses(scopedContext(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req struct {
		ExpenseType *string          `json:"expense_type"`
		Amount      *decimal.Decimal `json:"amount"`
		ExpenseDate *string          `json:"expense_date"`
		Notes       *string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateExpenseInput{
		ID:          id,
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		Notes:       req.Notes,
	}
	if req.ExpenseDate != nil {
		expenseDate, err := time.Parse(dateLayout, *req.ExpenseDate)
		if err != nil {
			response.BadRequest(c, "Invalid expense date")
			return
		}
		input.ExpenseDate = &expenseDate
	}

	expense, err := h.expenseService.UpdateExpense(scopedContext(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(scopedContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
