package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// DebtorEntry is one tenant's aggregate due position.
type DebtorEntry struct {
	TenantID   uuid.UUID       `json:"tenant_id"`
	TenantName string          `json:"tenant_name"`
	Phone      *string         `json:"phone,omitempty"`
	CurrentDue decimal.Decimal `json:"current_due"`
	LeaseCount int             `json:"lease_count"`
}

// TopDebtors sorts debtor entries by due descending and keeps the top n.
// Ties break by tenant name so the ordering is stable across requests.
func TopDebtors(entries []DebtorEntry, n int) []DebtorEntry {
	sorted := make([]DebtorEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CurrentDue.Equal(sorted[j].CurrentDue) {
			return sorted[i].CurrentDue.GreaterThan(sorted[j].CurrentDue)
		}
		return sorted[i].TenantName < sorted[j].TenantName
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CollectionPoint is one month of the collection trend.
type CollectionPoint struct {
	Period string          `json:"period"` // YYYY-MM
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

// CollectionTrend groups payment amounts by the calendar month they were
// received in, for the `months` most recent months ending at asOf. Months
// with no payments appear with a zero total so charts have no gaps.
func CollectionTrend(payments []entity.Payment, asOf time.Time, months int) []CollectionPoint {
	if months < 1 {
		months = 1
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for i := range payments {
		key := PeriodOf(payments[i].PaymentDate).Key()
		totals[key] = totals[key].Add(payments[i].Amount)
		counts[key]++
	}

	points := make([]CollectionPoint, 0, months)
	// Subtract months from the first of asOf's month; subtracting from a
	// day 29-31 normalizes past short months and loses the oldest point.
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	start := first.AddDate(0, -(months - 1), 0)
	for _, p := range PeriodsBetween(start, asOf) {
		key := p.Key()
		points = append(points, CollectionPoint{
			Period: key,
			Total:  totals[key],
			Count:  counts[key],
		})
	}
	return points
}

// FloorOccupancy is the occupied/vacant split for one floor.
type FloorOccupancy struct {
	Floor    enum.ShopFloor `json:"floor"`
	Occupied int            `json:"occupied"`
	Vacant   int            `json:"vacant"`
}

// OccupancySummary is the estate-wide occupancy projection.
type OccupancySummary struct {
	TotalShops int              `json:"total_shops"`
	Occupied   int              `json:"occupied"`
	Vacant     int              `json:"vacant"`
	Rate       float64          `json:"rate"` // occupied / total, 0 when no shops
	Floors     []FloorOccupancy `json:"floors"`
}

// Occupancy computes estate-wide and per-floor occupied/vacant counts.
func Occupancy(shops []entity.Shop) OccupancySummary {
	summary := OccupancySummary{TotalShops: len(shops)}

	byFloor := make(map[enum.ShopFloor]*FloorOccupancy)
	floors := []enum.ShopFloor{enum.ShopFloorGround, enum.ShopFloorFirst, enum.ShopFloorSecond, enum.ShopFloorSubedari}
	for _, f := range floors {
		byFloor[f] = &FloorOccupancy{Floor: f}
	}

	for i := range shops {
		fo := byFloor[shops[i].Floor]
		if shops[i].Status == enum.ShopStatusOccupied {
			summary.Occupied++
			fo.Occupied++
		} else {
			summary.Vacant++
			fo.Vacant++
		}
	}
	if summary.TotalShops > 0 {
		summary.Rate = float64(summary.Occupied) / float64(summary.TotalShops)
	}
	for _, f := range floors {
		summary.Floors = append(summary.Floors, *byFloor[f])
	}
	return summary
}
