package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles recording a payment
func (h *PaymentHandler) Create(c *gin.Context) {
	var req struct {
		LeaseID     uuid.UUID       `json:"lease_id" binding:"required"`
		Amount      decimal.Decimal `json:"amount" binding:"required"`
		PaymentDate string          `json:"payment_date" binding:"required"`
		RentMonths  []string        `json:"rent_months"`
		Notes       *string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		response.BadRequest(c, "Invalid payment date")
		return
	}

	payment, err := h.paymentService.CreatePayment(scopedContext(c), &service.CreatePaymentInput{
		LeaseID:     req.LeaseID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		RentMonths:  req.RentMonths,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// Get handles getting a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(scopedContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// List handles listing payments with filters
func (h *PaymentHandler) List(c *gin.Context) {
	params := &repository.PaymentFilterParams{
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
	if leaseIDStr := c.Query("lease_id"); leaseIDStr != "" {
		leaseID, err := uuid.Parse(leaseIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid lease ID")
			return
		}
		params.LeaseID = &leaseID
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return
		}
		params.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return
		}
		params.To = &to
	}

	result, err := h.paymentService.ListPayments(scopedContext(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// Delete handles deleting a payment. Super-admin only; the deletion is
// recorded in the audit trail.
func (h *PaymentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req struct {
		Reason *string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.paymentService.DeletePayment(scopedContext(c), id, *userID, req.Reason); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
