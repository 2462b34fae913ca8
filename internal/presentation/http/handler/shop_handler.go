package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
)

// ShopHandler handles shop-related HTTP requests
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Create handles creating a shop
func (h *ShopHandler) Create(c *gin.Context) {
	var req struct {
		ShopNumber       string                 `json:"shop_number" binding:"required,max=50"`
		Floor            enum.ShopFloor         `json:"floor"`
		SubedariCategory *enum.SubedariCategory `json:"subedari_category"`
		OwnershipType    enum.OwnershipType     `json:"ownership_type"`
		OwnerID          *uuid.UUID             `json:"owner_id"`
		Description      *string                `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.CreateShop(scopedContext(c), &service.CreateShopInput{
		ShopNumber:       req.ShopNumber,
		Floor:            req.Floor,
		SubedariCategory: req.SubedariCategory,
		OwnershipType:    req.OwnershipType,
		OwnerID:          req.OwnerID,
		Description:      req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shop created successfully", shop)
}

// Get handles getting a single shop
func (h *ShopHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	shop, err := h.shopService.GetShop(scopedContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop retrieved successfully", shop)
}

// List handles listing shops with filters
func (h *ShopHandler) List(c *gin.Context) {
	params := &repository.ShopFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}

	if floorStr := c.Query("floor"); floorStr != "" {
		floor, ok := enum.ParseShopFloor(floorStr)
		if !ok {
			response.BadRequest(c, "Invalid floor")
			return
		}
		params.Floor = &floor
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := enum.ParseShopStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Invalid status")
			return
		}
		params.Status = &status
	}
	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid owner ID")
			return
		}
		params.OwnerID = &ownerID
	}

	result, err := h.shopService.ListShops(scopedContext(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Shops retrieved successfully", result)
}

// Update handles updating a shop
func (h *ShopHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	var req struct {
		ShopNumber       *string                `json:"shop_number"`
		Floor            *enum.ShopFloor        `json:"floor"`
		SubedariCategory *enum.SubedariCategory `json:"subedari_category"`
		OwnershipType    *enum.OwnershipType    `json:"ownership_type"`
		OwnerID          *uuid.UUID             `json:"owner_id"`
		Description      *string                `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.UpdateShop(scopedContext(c), &service.UpdateShopInput{
		ID:               id,
		ShopNumber:       req.ShopNumber,
		Floor:            req.Floor,
		SubedariCategory: req.SubedariCategory,
		OwnershipType:    req.OwnershipType,
		OwnerID:          req.OwnerID,
		Description:      req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop updated successfully", shop)
}

// Delete handles deleting a shop
func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	if err := h.shopService.DeleteShop(scopedContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
