package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	infraRepo "github.com/mahirfaisal/estate-api/internal/infrastructure/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
)

// testEnv wires the services against an in-memory database so tests exercise
// the real repository layer
type testEnv struct {
	db       *gorm.DB
	leases   *service.LeaseService
	payments *service.PaymentService
	invoices *service.InvoiceService
	shops    *service.ShopService
	tenants  *service.TenantService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Owner{},
		&entity.Shop{},
		&entity.Tenant{},
		&entity.Lease{},
		&entity.RentAdjustment{},
		&entity.RentInvoice{},
		&entity.Payment{},
		&entity.Expense{},
		&entity.BankDeposit{},
		&entity.DeletionLog{},
		&entity.IdempotencyKey{},
	))

	ownerRepo := infraRepo.NewOwnerRepository(db)
	shopRepo := infraRepo.NewShopRepository(db)
	tenantRepo := infraRepo.NewTenantRepository(db)
	leaseRepo := infraRepo.NewLeaseRepository(db)
	adjustmentRepo := infraRepo.NewRentAdjustmentRepository(db)
	invoiceRepo := infraRepo.NewRentInvoiceRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	expenseRepo := infraRepo.NewExpenseRepository(db)

	invoiceService := service.NewInvoiceService(invoiceRepo, adjustmentRepo)

	return &testEnv{
		db:       db,
		invoices: invoiceService,
		leases:   service.NewLeaseService(leaseRepo, shopRepo, tenantRepo, paymentRepo, expenseRepo, adjustmentRepo, invoiceService),
		payments: service.NewPaymentService(paymentRepo, leaseRepo, invoiceRepo, invoiceService),
		shops:    service.NewShopService(shopRepo, ownerRepo, leaseRepo),
		tenants:  service.NewTenantService(tenantRepo, leaseRepo, invoiceRepo, paymentRepo),
	}
}

func (e *testEnv) seedShop(t *testing.T, number string) *entity.Shop {
	t.Helper()
	shop := &entity.Shop{
		ShopNumber:    number,
		Floor:         enum.ShopFloorGround,
		Status:        enum.ShopStatusVacant,
		OwnershipType: enum.OwnershipTypeCommon,
	}
	require.NoError(t, e.db.Create(shop).Error)
	return shop
}

func (e *testEnv) seedTenant(t *testing.T, name string) *entity.Tenant {
	t.Helper()
	tenant := &entity.Tenant{Name: name}
	require.NoError(t, e.db.Create(tenant).Error)
	return tenant
}

func (e *testEnv) seedLease(t *testing.T, shop *entity.Shop, tenant *entity.Tenant, start time.Time, rent int64) *entity.Lease {
	t.Helper()
	lease, err := e.leases.CreateLease(context.Background(), &service.CreateLeaseInput{
		TenantID:    tenant.ID,
		ShopID:      shop.ID,
		StartDate:   start,
		MonthlyRent: decimal.NewFromInt(rent),
	})
	require.NoError(t, err)
	return lease
}

func firstOfCurrentMonth() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func TestCreateLeaseOccupiesShop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop := env.seedShop(t, "G-10")
	tenant := env.seedTenant(t, "Karim")
	env.seedLease(t, shop, tenant, firstOfCurrentMonth(), 5000)

	var got entity.Shop
	require.NoError(t, env.db.First(&got, "id = ?", shop.ID).Error)
	assert.Equal(t, enum.ShopStatusOccupied, got.Status)

	// The shop holds at most one non-terminated lease
	other := env.seedTenant(t, "Rahim")
	_, err := env.leases.CreateLease(ctx, &service.CreateLeaseInput{
		TenantID:    other.ID,
		ShopID:      shop.ID,
		StartDate:   firstOfCurrentMonth(),
		MonthlyRent: decimal.NewFromInt(4000),
	})
	assert.ErrorIs(t, err, apperror.ErrShopOccupied)
}

func TestInvoiceBackfillPricesAdjustments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop := env.seedShop(t, "G-11")
	tenant := env.seedTenant(t, "Selim")

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	lease := env.seedLease(t, shop, tenant, start, 1000)

	_, err := env.leases.AdjustRent(ctx, &service.AdjustRentInput{
		LeaseID:       lease.ID,
		NewRent:       decimal.NewFromInt(1500),
		EffectiveDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	lease, err = env.leases.GetLease(ctx, lease.ID)
	require.NoError(t, err)

	invoices, err := env.invoices.EnsureUpToDate(ctx, lease, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, invoices, 4)

	// Invoices before the effective date keep the original rent
	assert.True(t, invoices[0].Amount.Equal(decimal.NewFromInt(1000)), "jan")
	assert.True(t, invoices[1].Amount.Equal(decimal.NewFromInt(1000)), "feb")
	assert.True(t, invoices[2].Amount.Equal(decimal.NewFromInt(1500)), "mar")
	assert.True(t, invoices[3].Amount.Equal(decimal.NewFromInt(1500)), "apr")

	// Backfill is idempotent
	again, err := env.invoices.EnsureUpToDate(ctx, lease, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, again, 4)
}

func TestCreatePaymentMarksLabeledMonths(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop := env.seedShop(t, "G-12")
	tenant := env.seedTenant(t, "Jashim")

	start := firstOfCurrentMonth()
	lease := env.seedLease(t, shop, tenant, start, 2000)

	key := ledger.PeriodOf(start).Key()
	payment, err := env.payments.CreatePayment(ctx, &service.CreatePaymentInput{
		LeaseID:     lease.ID,
		Amount:      decimal.NewFromInt(2000),
		PaymentDate: time.Now(),
		RentMonths:  []string{key},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ReceiptNumber)
	assert.Equal(t, tenant.ID, payment.TenantID)

	var invoice entity.RentInvoice
	require.NoError(t, env.db.First(&invoice, "lease_id = ? AND year = ? AND month = ?",
		lease.ID, start.Year(), int(start.Month())).Error)
	assert.True(t, invoice.IsPaid)
}

func TestCreatePaymentRejectsBadMonthLabel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop := env.seedShop(t, "G-13")
	tenant := env.seedTenant(t, "Nasir")
	lease := env.seedLease(t, shop, tenant, firstOfCurrentMonth(), 1000)

	_, err := env.payments.CreatePayment(ctx, &service.CreatePaymentInput{
		LeaseID:     lease.ID,
		Amount:      decimal.NewFromInt(1000),
		PaymentDate: time.Now(),
		RentMonths:  []string{"2025-13"},
	})
	assert.Error(t, err)
}

func TestDeletePaymentUnmarksUncoveredMonths(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop := env.seedShop(t, "G-14")
	tenant := env.seedTenant(t, "Habib")

	start := firstOfCurrentMonth()
	lease := env.seedLease(t, shop, tenant, start, 1500)

	key := ledger.PeriodOf(start).Key()
	first, err := env.payments.CreatePayment(ctx, &service.CreatePaymentInput{
		LeaseID:     lease.ID,
		Amount:      decimal.NewFromInt(1000),
		PaymentDate: time.Now(),
		RentMonths:  []string{key},
	})
	require.NoError(t, err)

	second, err := env.payments.CreatePayment(ctx, &service.CreatePaymentInput{
		LeaseID:     lease.ID,
		Amount:      decimal.NewFromInt(500),
		PaymentDate: time.Now(),
		RentMonths:  []string{key},
	})
	require.NoError(t, err)

	deletedBy := env.seedTenant(t, "ignored").ID // any uuid works for the audit row

	// With another payment still labeling the month, the invoice stays paid
	require.NoError(t, env.payments.DeletePayment(ctx, first.ID, deletedBy, nil))
	var invoice entity.RentInvoice
	require.NoError(t, env.db.First(&invoice, "lease_id = ? AND year = ? AND month = ?",
		lease.ID, start.Year(), int(start.Month())).Error)
	assert.True(t, invoice.IsPaid)

	require.NoError(t, env.payments.DeletePayment(ctx, second.ID, deletedBy, nil))
	require.NoError(t, env.db.First(&invoice, "lease_id = ? AND year = ? AND month = ?",
		lease.ID, start.Year(), int(start.Month())).Error)
	assert.False(t, invoice.IsPaid)

	var logs []entity.DeletionLog
	require.NoError(t, env.db.Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, "payment", logs[0].EntityType)
	assert.NotEmpty(t, logs[0].Snapshot)
}

func TestTerminateAppliesSecurityDeposit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	shop := env.seedShop(t, "G-15")
	tenant := env.seedTenant(t, "Mizan")

	start := firstOfCurrentMonth()
	lease, err := env.leases.CreateLease(ctx, &service.CreateLeaseInput{
		TenantID:        tenant.ID,
		ShopID:          shop.ID,
		StartDate:       start,
		MonthlyRent:     decimal.NewFromInt(1000),
		SecurityDeposit: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	out, err := env.leases.Terminate(ctx, lease.ID, &service.SettlementAdjustments{
		UseSecurityDeposit: true,
	})
	require.NoError(t, err)

	// Only the current month accrued, fully absorbed by the deposit
	assert.True(t, out.Settlement.CurrentDue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, out.Settlement.DepositApplied.Equal(decimal.NewFromInt(1000)))
	assert.True(t, out.Settlement.FinalSettledAmount.IsZero())
	assert.True(t, out.Settlement.RemainingSecurityDeposit.Equal(decimal.NewFromInt(4000)))

	var got entity.Lease
	require.NoError(t, env.db.First(&got, "id = ?", lease.ID).Error)
	assert.Equal(t, enum.LeaseStatusTerminated, got.Status)
	assert.True(t, got.SecurityDepositUsed.Equal(decimal.NewFromInt(1000)))

	var gotShop entity.Shop
	require.NoError(t, env.db.First(&gotShop, "id = ?", shop.ID).Error)
	assert.Equal(t, enum.ShopStatusVacant, gotShop.Status)

	// Termination is terminal
	_, err = env.leases.Terminate(ctx, lease.ID, &service.SettlementAdjustments{})
	assert.ErrorIs(t, err, apperror.ErrLeaseTerminated)
}

func TestTenantDuesAggregatesLeases(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tenant := env.seedTenant(t, "Alamin")
	shopA := env.seedShop(t, "G-16")
	shopB := env.seedShop(t, "G-17")

	start := firstOfCurrentMonth()
	env.seedLease(t, shopA, tenant, start, 1000)
	env.seedLease(t, shopB, tenant, start, 2000)

	dues, err := env.tenants.GetTenantDues(ctx, tenant.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, dues.LeaseCount)
	assert.True(t, dues.TotalDue.Equal(decimal.NewFromInt(3000)))
}

func TestLeaseReadsScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := &entity.Owner{Name: "Owner A"}
	require.NoError(t, env.db.Create(owner).Error)
	shop := &entity.Shop{
		ShopNumber:    "A-20",
		Floor:         enum.ShopFloorGround,
		Status:        enum.ShopStatusVacant,
		OwnershipType: enum.OwnershipTypeSole,
		OwnerID:       &owner.ID,
	}
	require.NoError(t, env.db.Create(shop).Error)
	tenant := env.seedTenant(t, "Mokbul")
	lease := env.seedLease(t, shop, tenant, firstOfCurrentMonth(), 5000)

	// Another owner's scope gets a not-found, never the ledger.
	foreign := infraRepo.WithOwner(ctx, uuid.New())
	_, err := env.leases.GetLease(foreign, lease.ID)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	_, err = env.leases.GetLedger(foreign, lease.ID)
	require.Error(t, err)

	own := infraRepo.WithOwner(ctx, owner.ID)
	got, err := env.leases.GetLease(own, lease.ID)
	require.NoError(t, err)
	assert.Equal(t, lease.ID, got.ID)
}
