package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopDebtors(t *testing.T) {
	entries := []DebtorEntry{
		{TenantID: uuid.New(), TenantName: "Karim", CurrentDue: dec(3000)},
		{TenantID: uuid.New(), TenantName: "Rahim", CurrentDue: dec(12000)},
		{TenantID: uuid.New(), TenantName: "Abdul", CurrentDue: dec(3000)},
		{TenantID: uuid.New(), TenantName: "Salam", CurrentDue: dec(500)},
	}

	top := TopDebtors(entries, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "Rahim", top[0].TenantName)
	// Equal dues order by name for stable output.
	assert.Equal(t, "Abdul", top[1].TenantName)
	assert.Equal(t, "Karim", top[2].TenantName)

	// Input slice is left untouched.
	assert.Equal(t, "Karim", entries[0].TenantName)
}

func TestCollectionTrend(t *testing.T) {
	payments := []entity.Payment{
		{Amount: dec(5000), PaymentDate: date(2024, time.June, 3)},
		{Amount: dec(2500), PaymentDate: date(2024, time.June, 21)},
		{Amount: dec(4000), PaymentDate: date(2024, time.April, 10)},
		{Amount: dec(9000), PaymentDate: date(2023, time.December, 1)}, // outside window
	}

	trend := CollectionTrend(payments, date(2024, time.June, 30), 6)

	require.Len(t, trend, 6)
	assert.Equal(t, "2024-01", trend[0].Period)
	assert.Equal(t, "2024-06", trend[5].Period)
	assert.True(t, trend[5].Total.Equal(dec(7500)))
	assert.Equal(t, 2, trend[5].Count)
	assert.True(t, trend[3].Total.Equal(dec(4000)))
	// Months without payments are present with zero totals.
	assert.True(t, trend[1].Total.IsZero())
}

func TestCollectionTrendMonthEnd(t *testing.T) {
	payments := []entity.Payment{
		{Amount: dec(1200), PaymentDate: date(2026, time.February, 14)},
	}

	// A day-31 asOf must not shorten the window: July 31 minus five
	// calendar months still starts the trend at February.
	trend := CollectionTrend(payments, date(2026, time.July, 31), 6)

	require.Len(t, trend, 6)
	assert.Equal(t, "2026-02", trend[0].Period)
	assert.Equal(t, "2026-07", trend[5].Period)
	assert.True(t, trend[0].Total.Equal(dec(1200)))
}

func TestOccupancy(t *testing.T) {
	shops := []entity.Shop{
		{Floor: enum.ShopFloorGround, Status: enum.ShopStatusOccupied},
		{Floor: enum.ShopFloorGround, Status: enum.ShopStatusVacant},
		{Floor: enum.ShopFloorFirst, Status: enum.ShopStatusOccupied},
		{Floor: enum.ShopFloorSubedari, Status: enum.ShopStatusOccupied},
	}

	summary := Occupancy(shops)

	assert.Equal(t, 4, summary.TotalShops)
	assert.Equal(t, 3, summary.Occupied)
	assert.Equal(t, 1, summary.Vacant)
	assert.InDelta(t, 0.75, summary.Rate, 1e-9)

	require.Len(t, summary.Floors, 4)
	assert.Equal(t, enum.ShopFloorGround, summary.Floors[0].Floor)
	assert.Equal(t, 1, summary.Floors[0].Occupied)
	assert.Equal(t, 1, summary.Floors[0].Vacant)
	assert.Equal(t, 0, summary.Floors[2].Occupied) // second floor empty
}

func TestOccupancy_NoShops(t *testing.T) {
	summary := Occupancy(nil)
	assert.Equal(t, 0, summary.TotalShops)
	assert.Zero(t, summary.Rate)
}
