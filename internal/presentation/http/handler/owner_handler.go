package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
)

// OwnerHandler handles owner-related HTTP requests
type OwnerHandler struct {
	ownerService *service.OwnerService
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// Create handles creating an owner
func (h *OwnerHandler) Create(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required,min=2,max=255"`
		Phone         *string `json:"phone"`
		Email         *string `json:"email"`
		Address       *string `json:"address"`
		BankName      *string `json:"bank_name"`
		AccountHolder *string `json:"account_holder"`
		AccountNumber *string `json:"account_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	owner, err := h.ownerService.CreateOwner(c.Request.Context(), &service.CreateOwnerInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Owner created successfully", owner)
}

// Get handles getting a single owner
func (h *OwnerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	owner, err := h.ownerService.GetOwner(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Owner retrieved successfully", owner)
}

// List handles listing owners
func (h *OwnerHandler) List(c *gin.Context) {
	result, err := h.ownerService.ListOwners(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Owners retrieved successfully", result)
}

// Update handles updating an owner
func (h *OwnerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	var req struct {
		Name          *string `json:"name"`
		Phone         *string `json:"phone"`
		Email         *string `json:"email"`
		Address       *string `json:"address"`
		BankName      *string `json:"bank_name"`
		AccountHolder *string `json:"account_holder"`
		AccountNumber *string `json:"account_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	owner, err := h.ownerService.UpdateOwner(c.Request.Context(), &service.UpdateOwnerInput{
		ID:            id,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Owner updated successfully", owner)
}

// Delete handles deleting an owner
func (h *OwnerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	if err := h.ownerService.DeleteOwner(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
