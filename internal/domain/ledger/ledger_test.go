package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testLease(rent int64) *entity.Lease {
	return &entity.Lease{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		ShopID:      uuid.New(),
		StartDate:   date(2024, time.January, 1),
		MonthlyRent: dec(rent),
		Status:      enum.LeaseStatusActive,
	}
}

func monthlyInvoices(lease *entity.Lease, rent int64, from, through Period) []entity.RentInvoice {
	var invoices []entity.RentInvoice
	for p := from; !through.Before(p); p = p.Next() {
		invoices = append(invoices, entity.RentInvoice{
			ID:       uuid.New(),
			LeaseID:  lease.ID,
			TenantID: lease.TenantID,
			Amount:   dec(rent),
			DueDate:  date(p.Year, p.Month, 1),
			Month:    int(p.Month),
			Year:     p.Year,
		})
	}
	return invoices
}

func TestPeriodsBetween(t *testing.T) {
	periods := PeriodsBetween(date(2024, time.November, 15), date(2025, time.February, 1))
	require.Len(t, periods, 4)
	assert.Equal(t, "2024-11", periods[0].Key())
	assert.Equal(t, "2024-12", periods[1].Key())
	assert.Equal(t, "2025-01", periods[2].Key())
	assert.Equal(t, "2025-02", periods[3].Key())

	assert.Nil(t, PeriodsBetween(date(2024, time.March, 1), date(2024, time.February, 1)))
	assert.Len(t, PeriodsBetween(date(2024, time.March, 31), date(2024, time.March, 1)), 1)
}

func TestComputeLeaseLedger_NoPayments(t *testing.T) {
	// Scenario: lease starts 2024-01-01 at 5000/month, nothing paid,
	// viewed as of 2024-04-01.
	lease := testLease(5000)
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.April})

	result := ComputeLeaseLedger(lease, invoices, nil, nil, date(2024, time.April, 1))

	require.Len(t, result.MonthlyBreakdown, 4)
	for _, row := range result.MonthlyBreakdown {
		assert.True(t, row.RentAmount.Equal(dec(5000)), "rent for %s", row.Period)
		assert.True(t, row.Outstanding.Equal(dec(5000)), "outstanding for %s", row.Period)
		assert.False(t, row.InvoiceMissing)
	}
	assert.True(t, result.Summary.TotalInvoiced.Equal(dec(20000)))
	assert.True(t, result.Summary.TotalPaid.IsZero())
	assert.True(t, result.Summary.TotalOutstanding.Equal(dec(20000)))
}

func TestComputeLeaseLedger_MultiMonthPayment(t *testing.T) {
	// Scenario: one 10000 payment labelled against January and February.
	// The labels drive the per-row display but the aggregate is the payment
	// total, not a per-month split.
	lease := testLease(5000)
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.April})
	payments := []entity.Payment{{
		ID:          uuid.New(),
		TenantID:    lease.TenantID,
		LeaseID:     lease.ID,
		Amount:      dec(10000),
		PaymentDate: date(2024, time.February, 10),
		RentMonths:  entity.RentMonthList{"2024-01", "2024-02"},
	}}

	result := ComputeLeaseLedger(lease, invoices, payments, nil, date(2024, time.April, 1))

	assert.True(t, result.Summary.TotalPaid.Equal(dec(10000)))
	assert.True(t, result.Summary.TotalOutstanding.Equal(dec(10000)))

	jan := result.MonthlyBreakdown[0]
	feb := result.MonthlyBreakdown[1]
	mar := result.MonthlyBreakdown[2]
	assert.True(t, jan.PaidAmount.Equal(dec(10000)), "label-based paid amount on Jan")
	assert.True(t, feb.PaidAmount.Equal(dec(10000)), "label-based paid amount on Feb")
	assert.True(t, jan.Outstanding.IsZero(), "per-row outstanding floors at zero")
	assert.True(t, mar.PaidAmount.IsZero())
	assert.True(t, mar.Outstanding.Equal(dec(5000)))
}

func TestComputeLeaseLedger_Deterministic(t *testing.T) {
	lease := testLease(7500)
	lease.OpeningDueBalance = dec(300)
	invoices := monthlyInvoices(lease, 7500, Period{2024, time.January}, Period{2024, time.June})
	payments := []entity.Payment{
		{Amount: dec(7500), PaymentDate: date(2024, time.January, 5), RentMonths: entity.RentMonthList{"2024-01"}},
		{Amount: dec(15000), PaymentDate: date(2024, time.March, 5), RentMonths: entity.RentMonthList{"2024-02", "2024-03"}},
	}
	asOf := date(2024, time.June, 20)

	first := ComputeLeaseLedger(lease, invoices, payments, nil, asOf)
	second := ComputeLeaseLedger(lease, invoices, payments, nil, asOf)
	assert.Equal(t, first, second)
}

func TestComputeLeaseLedger_Conservation(t *testing.T) {
	// totalOutstanding == openingDueBalance + totalInvoiced - totalPaid
	// regardless of how payments are labelled.
	lease := testLease(5000)
	lease.OpeningDueBalance = dec(1200)
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.March})
	payments := []entity.Payment{
		{Amount: dec(4000), PaymentDate: date(2024, time.January, 20), RentMonths: entity.RentMonthList{"2024-01"}},
		{Amount: dec(2500), PaymentDate: date(2024, time.February, 3)}, // no labels: aggregate only
	}

	result := ComputeLeaseLedger(lease, invoices, payments, nil, date(2024, time.March, 15))

	expected := dec(1200).Add(dec(15000)).Sub(dec(6500))
	assert.True(t, result.Summary.TotalOutstanding.Equal(expected))

	// The unlabelled payment shows in no monthly row.
	for _, row := range result.MonthlyBreakdown[1:] {
		assert.True(t, row.PaidAmount.IsZero(), "row %s", row.Period)
	}
}

func TestComputeLeaseLedger_MonthCoverageWithMissingInvoices(t *testing.T) {
	// Months without an invoice row still appear, priced at the current rent
	// and flagged for reconciliation.
	lease := testLease(6000)
	invoices := monthlyInvoices(lease, 6000, Period{2024, time.January}, Period{2024, time.February})
	// March and April invoices were never generated.

	result := ComputeLeaseLedger(lease, invoices, nil, nil, date(2024, time.April, 30))

	require.Len(t, result.MonthlyBreakdown, 4)
	seen := make(map[string]bool)
	for _, row := range result.MonthlyBreakdown {
		assert.False(t, seen[row.Period], "duplicate month %s", row.Period)
		seen[row.Period] = true
	}
	assert.False(t, result.MonthlyBreakdown[1].InvoiceMissing)
	assert.True(t, result.MonthlyBreakdown[2].InvoiceMissing)
	assert.True(t, result.MonthlyBreakdown[3].InvoiceMissing)
	assert.True(t, result.MonthlyBreakdown[2].RentAmount.Equal(dec(6000)))
	assert.Equal(t, []string{"2024-03", "2024-04"}, result.Summary.MissingInvoiceMonths)

	// Only real invoices count toward the authoritative total.
	assert.True(t, result.Summary.TotalInvoiced.Equal(dec(12000)))
}

func TestComputeLeaseLedger_ZeroInvoices(t *testing.T) {
	lease := testLease(5000)
	lease.StartDate = date(2024, time.May, 1)
	lease.OpeningDueBalance = dec(800)

	result := ComputeLeaseLedger(lease, nil, nil, nil, date(2024, time.April, 1))

	assert.Empty(t, result.MonthlyBreakdown)
	assert.True(t, result.Summary.TotalInvoiced.IsZero())
	assert.True(t, result.Summary.TotalPaid.IsZero())
	assert.True(t, result.Summary.TotalOutstanding.Equal(dec(800)))
}

func TestComputeLeaseLedger_TerminatedLeaseStopsAtEndDate(t *testing.T) {
	lease := testLease(5000)
	end := date(2024, time.March, 31)
	lease.EndDate = &end
	lease.Status = enum.LeaseStatusTerminated
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.March})

	result := ComputeLeaseLedger(lease, invoices, nil, nil, date(2024, time.August, 1))

	require.Len(t, result.MonthlyBreakdown, 3)
	assert.Equal(t, "2024-03", result.MonthlyBreakdown[2].Period)
}

func TestComputeLeaseLedger_NegativeOutstandingPreserved(t *testing.T) {
	// Overpayment leaves a negative authoritative total; it is reported,
	// never clamped away.
	lease := testLease(5000)
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.January})
	payments := []entity.Payment{
		{Amount: dec(8000), PaymentDate: date(2024, time.January, 15), RentMonths: entity.RentMonthList{"2024-01"}},
	}

	result := ComputeLeaseLedger(lease, invoices, payments, nil, date(2024, time.January, 31))

	assert.True(t, result.Summary.TotalOutstanding.Equal(dec(-3000)))
	assert.True(t, result.MonthlyBreakdown[0].Outstanding.IsZero())
}

func TestComputeLeaseLedger_AppliedDepositReducesOutstanding(t *testing.T) {
	lease := testLease(5000)
	end := date(2024, time.February, 29)
	lease.EndDate = &end
	lease.Status = enum.LeaseStatusTerminated
	lease.SecurityDepositUsed = dec(4000)
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.February})

	result := ComputeLeaseLedger(lease, invoices, nil, nil, date(2024, time.June, 1))

	assert.True(t, result.Summary.TotalOutstanding.Equal(dec(6000)))
}

func TestComputeLeaseLedger_AdjustmentPricesMissingMonths(t *testing.T) {
	// An adjustment effective in March raises the rent; the February invoice
	// keeps its issued amount, a missing April row uses the adjusted rent.
	lease := testLease(6000)
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.February})
	adjustments := []entity.RentAdjustment{{
		LeaseID:          lease.ID,
		PreviousRent:     dec(5000),
		NewRent:          dec(6000),
		AdjustmentAmount: dec(1000),
		EffectiveDate:    date(2024, time.March, 1),
	}}

	result := ComputeLeaseLedger(lease, invoices, nil, adjustments, date(2024, time.April, 15))

	require.Len(t, result.MonthlyBreakdown, 4)
	assert.True(t, result.MonthlyBreakdown[1].RentAmount.Equal(dec(5000)), "issued invoice amount untouched")
	assert.True(t, result.MonthlyBreakdown[3].RentAmount.Equal(dec(6000)), "missing month priced at adjusted rent")
}

func TestAddChargeableExpenses(t *testing.T) {
	lease := testLease(5000)
	invoices := monthlyInvoices(lease, 5000, Period{2024, time.January}, Period{2024, time.February})
	result := ComputeLeaseLedger(lease, invoices, nil, nil, date(2024, time.February, 28))

	leaseID := lease.ID
	AddChargeableExpenses(&result, []entity.Expense{
		{LeaseID: &leaseID, Amount: dec(700)},
		{LeaseID: &leaseID, Amount: dec(300)},
	})

	assert.True(t, result.Summary.ChargeableExpenses.Equal(dec(1000)))
	assert.True(t, result.Summary.GrandTotalOutstanding.Equal(dec(11000)))
}

func TestTenantDues(t *testing.T) {
	tenant := &entity.Tenant{OpeningDueBalance: dec(500)}
	dues := TenantDues(tenant, []Summary{
		{TotalOutstanding: dec(2000)},
		{TotalOutstanding: dec(-300)},
	})
	assert.True(t, dues.Equal(dec(2200)))
}

func TestDeriveLeaseStatus(t *testing.T) {
	today := date(2024, time.June, 15)

	t.Run("no end date is active", func(t *testing.T) {
		lease := testLease(5000)
		assert.Equal(t, enum.LeaseStatusActive, DeriveLeaseStatus(lease, today))
	})

	t.Run("far end date is active", func(t *testing.T) {
		lease := testLease(5000)
		end := date(2024, time.December, 31)
		lease.EndDate = &end
		assert.Equal(t, enum.LeaseStatusActive, DeriveLeaseStatus(lease, today))
	})

	t.Run("within thirty days is expiring soon", func(t *testing.T) {
		lease := testLease(5000)
		end := date(2024, time.July, 10)
		lease.EndDate = &end
		assert.Equal(t, enum.LeaseStatusExpiringSoon, DeriveLeaseStatus(lease, today))
	})

	t.Run("past end date is expired", func(t *testing.T) {
		lease := testLease(5000)
		end := date(2024, time.June, 14)
		lease.EndDate = &end
		assert.Equal(t, enum.LeaseStatusExpired, DeriveLeaseStatus(lease, today))
	})

	t.Run("terminated wins over dates", func(t *testing.T) {
		lease := testLease(5000)
		end := date(2024, time.December, 31)
		lease.EndDate = &end
		lease.Status = enum.LeaseStatusTerminated
		assert.Equal(t, enum.LeaseStatusTerminated, DeriveLeaseStatus(lease, today))
	})
}
