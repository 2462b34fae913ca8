package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PaymentService handles payment recording and deletion
type PaymentService struct {
	paymentRepo    repository.PaymentRepository
	leaseRepo      repository.LeaseRepository
	invoiceRepo    repository.RentInvoiceRepository
	invoiceService *InvoiceService
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	leaseRepo repository.LeaseRepository,
	invoiceRepo repository.RentInvoiceRepository,
	invoiceService *InvoiceService,
) *PaymentService {
	return &PaymentService{
		paymentRepo:    paymentRepo,
		leaseRepo:      leaseRepo,
		invoiceRepo:    invoiceRepo,
		invoiceService: invoiceService,
	}
}

// CreatePaymentInput represents the create payment input. RentMonths lists
// the "YYYY-MM" periods the payment covers; an empty list is a payment
// against opening dues.
type CreatePaymentInput struct {
	LeaseID     uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	RentMonths  []string
	Notes       *string
}

// CreatePayment records a payment against a lease. Missing invoices are
// backfilled first; the receipt number allocation, the insert, and the
// paid marks on the labeled months then commit as one transaction.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	lease, err := s.leaseRepo.GetByID(ctx, input.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, apperror.NewNotFoundError("Lease")
	}

	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	periods := make([]ledger.Period, 0, len(input.RentMonths))
	for _, key := range input.RentMonths {
		p, err := ledger.ParsePeriodKey(key)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid rent month: " + key)
		}
		periods = append(periods, p)
	}

	if _, err := s.invoiceService.EnsureUpToDate(ctx, lease, time.Now()); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		TenantID:    lease.TenantID,
		LeaseID:     lease.ID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		RentMonths:  entity.RentMonthList(input.RentMonths),
		Notes:       input.Notes,
	}

	if err := s.paymentRepo.CreateWithInvoicesPaid(ctx, payment, periods); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"lease_id":   lease.ID,
		"receipt":    payment.ReceiptNumber,
		"amount":     input.Amount.String(),
	}).Info("payment recorded")

	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments with filters and pagination
func (s *PaymentService) ListPayments(ctx context.Context, params *repository.PaymentFilterParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}

// DeletePayment soft-deletes a payment together with its deletion-log
// snapshot, then clears the paid flag on any labeled month no other
// payment covers
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID, reason *string) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}

	snapshot, err := json.Marshal(payment)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.DeleteWithLog(ctx, payment, &entity.DeletionLog{
		EntityType: "payment",
		EntityID:   payment.ID,
		Snapshot:   string(snapshot),
		Reason:     reason,
		DeletedBy:  deletedBy,
	}); err != nil {
		return err
	}

	remaining, err := s.paymentRepo.ListByLease(ctx, payment.LeaseID)
	if err != nil {
		return err
	}

	var unpaid []ledger.Period
	for _, key := range payment.RentMonths {
		covered := false
		for i := range remaining {
			if remaining[i].RentMonths.Contains(key) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		if p, err := ledger.ParsePeriodKey(key); err == nil {
			unpaid = append(unpaid, p)
		}
	}

	if err := s.invoiceRepo.MarkUnpaid(ctx, payment.LeaseID, unpaid); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"deleted_by": deletedBy,
	}).Warn("payment deleted")

	return nil
}
