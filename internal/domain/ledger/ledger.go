// Package ledger holds the pure financial calculations for leases: the
// month-by-month rent ledger, termination settlements, status derivation and
// the dashboard roll-ups. Nothing in this package performs I/O; every function
// is deterministic over the record snapshot it is given.
package ledger

import (
	"fmt"
	"time"

	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Period is a calendar month due period.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Key returns the "YYYY-MM" form of the period.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// ParsePeriodKey parses a "YYYY-MM" key back into a Period.
func ParsePeriodKey(key string) (Period, error) {
	var year, month int
	if _, err := fmt.Sscanf(key, "%d-%d", &year, &month); err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", key, err)
	}
	if month < 1 || month > 12 || year < 1 {
		return Period{}, fmt.Errorf("invalid period %q", key)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p precedes q.
func (p Period) Before(q Period) bool {
	return p.Year < q.Year || (p.Year == q.Year && p.Month < q.Month)
}

// PeriodsBetween returns every calendar month from the month of `from`
// through the month of `to`, inclusive. Returns nil when `to` precedes `from`.
func PeriodsBetween(from, to time.Time) []Period {
	start := PeriodOf(from)
	end := PeriodOf(to)
	if end.Before(start) {
		return nil
	}
	var periods []Period
	for p := start; !end.Before(p); p = p.Next() {
		periods = append(periods, p)
	}
	return periods
}

// MonthRow is one display row of the monthly breakdown. PaidAmount reflects
// the rent-month labels on payments and is informational only; the summary
// totals are the authoritative figures.
type MonthRow struct {
	Period         string          `json:"period"` // YYYY-MM
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	RentAmount     decimal.Decimal `json:"rent_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	InvoiceMissing bool            `json:"invoice_missing"`
	IsPaid         bool            `json:"is_paid"`
}

// Summary holds the authoritative aggregate totals for a lease.
type Summary struct {
	OpeningDueBalance     decimal.Decimal `json:"opening_due_balance"`
	TotalInvoiced         decimal.Decimal `json:"total_invoiced"`
	TotalPaid             decimal.Decimal `json:"total_paid"`
	TotalOutstanding      decimal.Decimal `json:"total_outstanding"` // may be negative (tenant overpaid)
	ChargeableExpenses    decimal.Decimal `json:"chargeable_expenses"`
	GrandTotalOutstanding decimal.Decimal `json:"grand_total_outstanding"`
	MonthsDue             int             `json:"months_due"`
	MissingInvoiceMonths  []string        `json:"missing_invoice_months,omitempty"`
}

// LeaseLedger is the full computed ledger for one lease.
type LeaseLedger struct {
	MonthlyBreakdown []MonthRow `json:"monthly_breakdown"`
	Summary          Summary    `json:"summary"`
}

// ComputeLeaseLedger derives the monthly breakdown and aggregate totals for a
// lease from a snapshot of its invoices, payments and adjustments.
//
// The canonical month list runs from the lease start through asOf (or through
// the termination end date for terminated leases), whether or not an invoice
// row exists for each month. A month without an invoice is priced at the rent
// currently in effect and flagged as a data-integrity gap rather than hidden.
//
// totalOutstanding = openingDueBalance + totalInvoiced - totalPaid -
// securityDepositUsed, where totalPaid counts every payment on the lease
// regardless of its month labels.
// The per-row outstanding figures are display-only and are never summed.
func ComputeLeaseLedger(lease *entity.Lease, invoices []entity.RentInvoice, payments []entity.Payment, adjustments []entity.RentAdjustment, asOf time.Time) LeaseLedger {
	end := asOf
	if lease.Status.IsTerminated() && lease.EndDate != nil && lease.EndDate.Before(asOf) {
		end = *lease.EndDate
	}

	invoiceByPeriod := make(map[string]*entity.RentInvoice, len(invoices))
	for i := range invoices {
		invoiceByPeriod[invoices[i].PeriodKey()] = &invoices[i]
	}

	currentRent := rentInEffect(lease, adjustments, asOf)

	periods := PeriodsBetween(lease.StartDate, end)
	rows := make([]MonthRow, 0, len(periods))
	var missing []string

	for _, p := range periods {
		key := p.Key()
		row := MonthRow{
			Period: key,
			Year:   p.Year,
			Month:  int(p.Month),
		}

		if inv, ok := invoiceByPeriod[key]; ok {
			row.RentAmount = inv.Amount
			row.IsPaid = inv.IsPaid
		} else {
			row.RentAmount = currentRent
			row.InvoiceMissing = true
			missing = append(missing, key)
		}

		paid := decimal.Zero
		for i := range payments {
			if payments[i].RentMonths.Contains(key) {
				paid = paid.Add(payments[i].Amount)
			}
		}
		row.PaidAmount = paid

		outstanding := row.RentAmount.Sub(paid)
		if outstanding.IsNegative() {
			outstanding = decimal.Zero
		}
		row.Outstanding = outstanding

		rows = append(rows, row)
	}

	summary := Summary{
		OpeningDueBalance:    lease.OpeningDueBalance,
		TotalInvoiced:        decimal.Zero,
		TotalPaid:            decimal.Zero,
		MonthsDue:            len(periods),
		MissingInvoiceMonths: missing,
	}
	for i := range invoices {
		summary.TotalInvoiced = summary.TotalInvoiced.Add(invoices[i].Amount)
	}
	for i := range payments {
		summary.TotalPaid = summary.TotalPaid.Add(payments[i].Amount)
	}
	// Security deposit usage is recorded at termination; once applied it
	// reduces what the tenant still owes
	summary.TotalOutstanding = summary.OpeningDueBalance.
		Add(summary.TotalInvoiced).
		Sub(summary.TotalPaid).
		Sub(lease.SecurityDepositUsed)
	summary.ChargeableExpenses = decimal.Zero
	summary.GrandTotalOutstanding = summary.TotalOutstanding

	return LeaseLedger{MonthlyBreakdown: rows, Summary: summary}
}

// AddChargeableExpenses folds tenant-chargeable expense amounts into the
// ledger's grand total. Only expenses attributed to the lease should be passed.
func AddChargeableExpenses(l *LeaseLedger, expenses []entity.Expense) {
	total := decimal.Zero
	for i := range expenses {
		total = total.Add(expenses[i].Amount)
	}
	l.Summary.ChargeableExpenses = total
	l.Summary.GrandTotalOutstanding = l.Summary.TotalOutstanding.Add(total)
}

// rentInEffect resolves the monthly rent in effect at asOf. Adjustments apply
// prospectively only, so this is the newRent of the latest adjustment whose
// effective date is not after asOf, falling back to the lease's stored rent.
func rentInEffect(lease *entity.Lease, adjustments []entity.RentAdjustment, asOf time.Time) decimal.Decimal {
	rent := lease.MonthlyRent
	var latest *entity.RentAdjustment
	for i := range adjustments {
		a := &adjustments[i]
		if a.EffectiveDate.After(asOf) {
			continue
		}
		if latest == nil || a.EffectiveDate.After(latest.EffectiveDate) {
			latest = a
		}
	}
	if latest != nil {
		rent = latest.NewRent
	}
	return rent
}

// TenantDues sums a tenant's lease-level outstanding amounts with the
// tenant-level opening balance that predates any lease.
func TenantDues(tenant *entity.Tenant, leaseSummaries []Summary) decimal.Decimal {
	total := tenant.OpeningDueBalance
	for i := range leaseSummaries {
		total = total.Add(leaseSummaries[i].TotalOutstanding)
	}
	return total
}

// statusLookahead is the window before a lease's end date during which it is
// reported as expiring_soon.
const statusLookaheadDays = 30

// DeriveLeaseStatus computes the effective lease status at `today`.
// Termination is stored and terminal; the expired/expiring_soon states are
// derived from the end date and never written back.
func DeriveLeaseStatus(lease *entity.Lease, today time.Time) enum.LeaseStatus {
	if lease.Status.IsTerminated() {
		return enum.LeaseStatusTerminated
	}
	if lease.EndDate == nil {
		return enum.LeaseStatusActive
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(lease.EndDate.Year(), lease.EndDate.Month(), lease.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(day) {
		return enum.LeaseStatusExpired
	}
	if !end.After(day.AddDate(0, 0, statusLookaheadDays)) {
		return enum.LeaseStatusExpiringSoon
	}
	return enum.LeaseStatusActive
}
