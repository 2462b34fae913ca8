package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/ledger"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	infraRepo "github.com/mahirfaisal/estate-api/internal/infrastructure/repository"
	"github.com/mahirfaisal/estate-api/pkg/pagination"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A fresh connection would get a fresh in-memory database
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

	return db
}

func seedShop(t *testing.T, db *gorm.DB, number string, ownerID *uuid.UUID) *entity.Shop {
	t.Helper()
	shop := &entity.Shop{
		ShopNumber:    number,
		Floor:         enum.ShopFloorGround,
		Status:        enum.ShopStatusVacant,
		OwnershipType: enum.OwnershipTypeSole,
		OwnerID:       ownerID,
	}
	if ownerID == nil {
		shop.OwnershipType = enum.OwnershipTypeCommon
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func seedTenant(t *testing.T, db *gorm.DB, name string) *entity.Tenant {
	t.Helper()
	tenant := &entity.Tenant{Name: name}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedOwner(t *testing.T, db *gorm.DB, name string) *entity.Owner {
	t.Helper()
	owner := &entity.Owner{Name: name}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

func TestLeaseRepositoryCreateWithShopOccupied(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewLeaseRepository(db)
	shopRepo := infraRepo.NewShopRepository(db)

	shop := seedShop(t, db, "G-01", nil)
	tenant := seedTenant(t, db, "Karim")

	lease := &entity.Lease{
		TenantID:    tenant.ID,
		ShopID:      shop.ID,
		StartDate:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(5000),
		Status:      enum.LeaseStatusActive,
	}
	require.NoError(t, repo.CreateWithShopOccupied(ctx, lease, shop))

	got, err := shopRepo.GetByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ShopStatusOccupied, got.Status)

	active, err := repo.GetActiveByShop(ctx, shop.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, lease.ID, active.ID)
}

func TestLeaseRepositoryTerminate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewLeaseRepository(db)
	shopRepo := infraRepo.NewShopRepository(db)

	shop := seedShop(t, db, "G-02", nil)
	tenant := seedTenant(t, db, "Rahim")

	lease := &entity.Lease{
		TenantID:    tenant.ID,
		ShopID:      shop.ID,
		StartDate:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(3000),
		Status:      enum.LeaseStatusActive,
	}
	require.NoError(t, repo.CreateWithShopOccupied(ctx, lease, shop))

	require.NoError(t, repo.Terminate(ctx, lease, shop))

	got, err := repo.GetByID(ctx, lease.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.LeaseStatusTerminated, got.Status)
	assert.NotNil(t, got.TerminatedAt)
	assert.NotNil(t, got.EndDate)

	gotShop, err := shopRepo.GetByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ShopStatusVacant, gotShop.Status)

	active, err := repo.GetActiveByShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestLeaseRepositoryGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewLeaseRepository(db)

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRentAdjustmentRepositoryCreateWithLeaseRent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	leaseRepo := infraRepo.NewLeaseRepository(db)
	adjRepo := infraRepo.NewRentAdjustmentRepository(db)

	shop := seedShop(t, db, "F-01", nil)
	tenant := seedTenant(t, db, "Selim")
	lease := &entity.Lease{
		TenantID:    tenant.ID,
		ShopID:      shop.ID,
		StartDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(2000),
		Status:      enum.LeaseStatusActive,
	}
	require.NoError(t, leaseRepo.CreateWithShopOccupied(ctx, lease, shop))

	lease.MonthlyRent = decimal.NewFromInt(2500)
	adjustment := &entity.RentAdjustment{
		LeaseID:          lease.ID,
		PreviousRent:     decimal.NewFromInt(2000),
		NewRent:          decimal.NewFromInt(2500),
		AdjustmentAmount: decimal.NewFromInt(500),
		EffectiveDate:    time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, adjRepo.CreateWithLeaseRent(ctx, adjustment, lease))

	got, err := leaseRepo.GetByID(ctx, lease.ID)
	require.NoError(t, err)
	assert.True(t, got.MonthlyRent.Equal(decimal.NewFromInt(2500)))

	history, err := adjRepo.ListByLease(ctx, lease.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].AdjustmentAmount.Equal(decimal.NewFromInt(500)))
}

func TestRentInvoiceRepositoryMarkPaidAndUnpaid(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewRentInvoiceRepository(db)

	leaseID := uuid.New()
	tenantID := uuid.New()
	invoices := []entity.RentInvoice{
		{LeaseID: leaseID, TenantID: tenantID, Amount: decimal.NewFromInt(1000), DueDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), Month: 1, Year: 2025},
		{LeaseID: leaseID, TenantID: tenantID, Amount: decimal.NewFromInt(1000), DueDate: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), Month: 2, Year: 2025},
	}
	require.NoError(t, repo.CreateBatch(ctx, invoices))

	periods := []ledger.Period{{Year: 2025, Month: time.January}}
	require.NoError(t, repo.MarkPaid(ctx, leaseID, periods))

	list, err := repo.ListByLease(ctx, leaseID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsPaid)
	assert.False(t, list[1].IsPaid)

	require.NoError(t, repo.MarkUnpaid(ctx, leaseID, periods))
	list, err = repo.ListByLease(ctx, leaseID)
	require.NoError(t, err)
	assert.False(t, list[0].IsPaid)
}

func TestPaymentRepositoryCreateWithInvoicesPaid(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewPaymentRepository(db)
	invoiceRepo := infraRepo.NewRentInvoiceRepository(db)

	year := time.Now().Year()
	leaseID := uuid.New()
	tenantID := uuid.New()
	require.NoError(t, invoiceRepo.CreateBatch(ctx, []entity.RentInvoice{
		{LeaseID: leaseID, TenantID: tenantID, Amount: decimal.NewFromInt(500), DueDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Month: 3, Year: 2025},
	}))

	payment := &entity.Payment{
		TenantID:    tenantID,
		LeaseID:     leaseID,
		Amount:      decimal.NewFromInt(500),
		PaymentDate: time.Now(),
		RentMonths:  entity.RentMonthList{"2025-03"},
	}
	require.NoError(t, repo.CreateWithInvoicesPaid(ctx, payment, []ledger.Period{{Year: 2025, Month: time.March}}))

	assert.Equal(t, fmt.Sprintf("RCP-%04d-%06d", year, 1), payment.ReceiptNumber)

	list, err := invoiceRepo.ListByLease(ctx, leaseID)
	require.NoError(t, err)
	assert.True(t, list[0].IsPaid)

	second := &entity.Payment{
		TenantID:    tenantID,
		LeaseID:     leaseID,
		Amount:      decimal.NewFromInt(700),
		PaymentDate: time.Now(),
		RentMonths:  entity.RentMonthList{},
	}
	require.NoError(t, repo.CreateWithInvoicesPaid(ctx, second, nil))
	assert.Equal(t, fmt.Sprintf("RCP-%04d-%06d", year, 2), second.ReceiptNumber)
}

func TestPaymentRepositoryCreateRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewPaymentRepository(db)
	invoiceRepo := infraRepo.NewRentInvoiceRepository(db)

	leaseID := uuid.New()
	tenantID := uuid.New()
	require.NoError(t, invoiceRepo.CreateBatch(ctx, []entity.RentInvoice{
		{LeaseID: leaseID, TenantID: tenantID, Amount: decimal.NewFromInt(500), DueDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), Month: 4, Year: 2025},
	}))

	first := &entity.Payment{
		TenantID:    tenantID,
		LeaseID:     leaseID,
		Amount:      decimal.NewFromInt(500),
		PaymentDate: time.Now(),
		RentMonths:  entity.RentMonthList{},
	}
	require.NoError(t, repo.CreateWithInvoicesPaid(ctx, first, nil))

	// Reusing an existing ID makes the insert fail; nothing of the
	// attempt may stick.
	dup := &entity.Payment{
		ID:          first.ID,
		TenantID:    tenantID,
		LeaseID:     leaseID,
		Amount:      decimal.NewFromInt(500),
		PaymentDate: time.Now(),
		RentMonths:  entity.RentMonthList{"2025-04"},
	}
	err := repo.CreateWithInvoicesPaid(ctx, dup, []ledger.Period{{Year: 2025, Month: time.April}})
	require.Error(t, err)

	list, err := invoiceRepo.ListByLease(ctx, leaseID)
	require.NoError(t, err)
	assert.False(t, list[0].IsPaid)

	year := time.Now().Year()
	next, err := repo.NextReceiptNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("RCP-%04d-%06d", year, 2), next)
}

func TestPaymentRepositoryDeleteWithLog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewPaymentRepository(db)

	year := time.Now().Year()

	payment := &entity.Payment{
		TenantID:    uuid.New(),
		LeaseID:     uuid.New(),
		Amount:      decimal.NewFromInt(700),
		PaymentDate: time.Now(),
		RentMonths:  entity.RentMonthList{},
	}
	require.NoError(t, repo.CreateWithInvoicesPaid(ctx, payment, nil))

	deletedBy := uuid.New()
	require.NoError(t, repo.DeleteWithLog(ctx, payment, &entity.DeletionLog{
		EntityType: "payment",
		EntityID:   payment.ID,
		Snapshot:   "{}",
		DeletedBy:  deletedBy,
	}))

	got, err := repo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var logs []entity.DeletionLog
	require.NoError(t, db.Find(&logs, "entity_id = ?", payment.ID).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, deletedBy, logs[0].DeletedBy)

	// Soft-deleted payments keep their receipt number reserved
	next, err := repo.NextReceiptNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("RCP-%04d-%06d", year, 2), next)
}

func TestPaymentRepositoryDeleteWithLogRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewPaymentRepository(db)

	payment := &entity.Payment{
		TenantID:    uuid.New(),
		LeaseID:     uuid.New(),
		Amount:      decimal.NewFromInt(900),
		PaymentDate: time.Now(),
		RentMonths:  entity.RentMonthList{},
	}
	require.NoError(t, repo.CreateWithInvoicesPaid(ctx, payment, nil))

	blocker := &entity.DeletionLog{
		EntityType: "payment",
		EntityID:   uuid.New(),
		Snapshot:   "{}",
		DeletedBy:  uuid.New(),
	}
	require.NoError(t, db.Create(blocker).Error)

	// A log insert that collides on ID must undo the delete too.
	err := repo.DeleteWithLog(ctx, payment, &entity.DeletionLog{
		ID:         blocker.ID,
		EntityType: "payment",
		EntityID:   payment.ID,
		Snapshot:   "{}",
		DeletedBy:  uuid.New(),
	})
	require.Error(t, err)

	got, err := repo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestShopOwnerScopeFiltersListings(t *testing.T) {
	db := setupTestDB(t)
	shopRepo := infraRepo.NewShopRepository(db)
	leaseRepo := infraRepo.NewLeaseRepository(db)

	ownerA := seedOwner(t, db, "Owner A")
	ownerB := seedOwner(t, db, "Owner B")
	shopA := seedShop(t, db, "A-01", &ownerA.ID)
	shopB := seedShop(t, db, "B-01", &ownerB.ID)
	tenant := seedTenant(t, db, "Jashim")

	ctx := context.Background()
	for _, shop := range []*entity.Shop{shopA, shopB} {
		lease := &entity.Lease{
			TenantID:    tenant.ID,
			ShopID:      shop.ID,
			StartDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			MonthlyRent: decimal.NewFromInt(1000),
			Status:      enum.LeaseStatusActive,
		}
		require.NoError(t, leaseRepo.CreateWithShopOccupied(ctx, lease, shop))
	}

	scoped := infraRepo.WithOwner(ctx, ownerA.ID)

	shops, total, err := shopRepo.List(scoped, &domainRepo.ShopFilterParams{Pagination: pagination.DefaultPagination()})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, shops, 1)
	assert.Equal(t, "A-01", shops[0].ShopNumber)

	leases, total, err := leaseRepo.List(scoped, &domainRepo.LeaseFilterParams{Pagination: pagination.DefaultPagination()})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, leases, 1)
	assert.Equal(t, shopA.ID, leases[0].ShopID)

	// Super admins bypass the scope
	unscoped := infraRepo.WithSkipOwnerScope(infraRepo.WithOwner(ctx, ownerA.ID), true)
	shops, total, err = shopRepo.List(unscoped, &domainRepo.ShopFilterParams{Pagination: pagination.DefaultPagination()})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, shops, 2)
}

func TestOwnerScopeGuardsPerIDReads(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	shopRepo := infraRepo.NewShopRepository(db)
	leaseRepo := infraRepo.NewLeaseRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	expenseRepo := infraRepo.NewExpenseRepository(db)

	ownerA := seedOwner(t, db, "Owner A")
	ownerB := seedOwner(t, db, "Owner B")
	shop := seedShop(t, db, "A-05", &ownerA.ID)
	tenant := seedTenant(t, db, "Jalal")

	lease := &entity.Lease{
		TenantID:    tenant.ID,
		ShopID:      shop.ID,
		StartDate:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(4000),
		Status:      enum.LeaseStatusActive,
	}
	require.NoError(t, leaseRepo.CreateWithShopOccupied(ctx, lease, shop))

	payment := &entity.Payment{
		TenantID:    tenant.ID,
		LeaseID:     lease.ID,
		Amount:      decimal.NewFromInt(4000),
		PaymentDate: time.Now(),
		RentMonths:  entity.RentMonthList{},
	}
	require.NoError(t, paymentRepo.CreateWithInvoicesPaid(ctx, payment, nil))

	expense := &entity.Expense{
		ExpenseType: "Repairs",
		Amount:      decimal.NewFromInt(300),
		ExpenseDate: time.Now(),
		Allocation:  enum.ExpenseAllocationOwner,
		OwnerID:     &ownerA.ID,
	}
	require.NoError(t, expenseRepo.Create(ctx, expense))

	// Another owner's scope must not see any of it by ID.
	asB := infraRepo.WithOwner(ctx, ownerB.ID)
	gotShop, err := shopRepo.GetByID(asB, shop.ID)
	require.NoError(t, err)
	assert.Nil(t, gotShop)
	gotLease, err := leaseRepo.GetByID(asB, lease.ID)
	require.NoError(t, err)
	assert.Nil(t, gotLease)
	gotPayment, err := paymentRepo.GetByID(asB, payment.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPayment)
	gotExpense, err := expenseRepo.GetByID(asB, expense.ID)
	require.NoError(t, err)
	assert.Nil(t, gotExpense)

	asA := infraRepo.WithOwner(ctx, ownerA.ID)
	gotLease, err = leaseRepo.GetByID(asA, lease.ID)
	require.NoError(t, err)
	require.NotNil(t, gotLease)
	gotPayment, err = paymentRepo.GetByID(asA, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, gotPayment)

	// Common expenses stay visible to every owner.
	common := &entity.Expense{
		ExpenseType: "Electricity",
		Amount:      decimal.NewFromInt(900),
		ExpenseDate: time.Now(),
		Allocation:  enum.ExpenseAllocationCommon,
	}
	require.NoError(t, expenseRepo.Create(ctx, common))
	gotExpense, err = expenseRepo.GetByID(asB, common.ID)
	require.NoError(t, err)
	require.NotNil(t, gotExpense)

	unscoped := infraRepo.WithSkipOwnerScope(infraRepo.WithOwner(ctx, ownerB.ID), true)
	gotLease, err = leaseRepo.GetByID(unscoped, lease.ID)
	require.NoError(t, err)
	require.NotNil(t, gotLease)
}

func TestIdempotencyRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := infraRepo.NewIdempotencyRepository(db)

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
		Key:          "abc-123",
		UserID:       userID,
		Endpoint:     "POST /payments",
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	got, err := repo.GetByKey(ctx, "abc-123", userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 201, got.ResponseCode)
	assert.False(t, got.IsExpired())

	// Keys are per user
	other, err := repo.GetByKey(ctx, "abc-123", uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)
}
