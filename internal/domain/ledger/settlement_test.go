package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeSettlement_DepositCoversDues(t *testing.T) {
	// Due 8000 plus 2000 damages, 15000 deposit: the deposit absorbs the
	// full 10000 and 5000 remains.
	s := ComputeSettlement(SettlementInput{
		CurrentDue:         dec(8000),
		SecurityDeposit:    dec(15000),
		TenantAdjustment:   dec(2000),
		UseSecurityDeposit: true,
	})

	assert.True(t, s.DepositApplied.Equal(dec(10000)))
	assert.True(t, s.FinalSettledAmount.IsZero())
	assert.True(t, s.RemainingSecurityDeposit.Equal(dec(5000)))
	assert.True(t, s.TenantCredit.IsZero())
}

func TestComputeSettlement_OverpaidTenantCredit(t *testing.T) {
	// Tenant overpaid by 3000 and no deposit is used: the full amount is
	// owed back as credit.
	s := ComputeSettlement(SettlementInput{
		CurrentDue:      dec(-3000),
		SecurityDeposit: dec(5000),
	})

	assert.True(t, s.FinalSettledAmount.Equal(dec(-3000)))
	assert.True(t, s.TenantCredit.Equal(dec(3000)))
	assert.True(t, s.DepositApplied.IsZero())
	assert.True(t, s.RemainingSecurityDeposit.Equal(dec(5000)))
}

func TestComputeSettlement_DepositNeverOverApplied(t *testing.T) {
	t.Run("credit balance applies nothing", func(t *testing.T) {
		s := ComputeSettlement(SettlementInput{
			CurrentDue:         dec(-2000),
			SecurityDeposit:    dec(10000),
			UseSecurityDeposit: true,
		})
		assert.True(t, s.DepositApplied.IsZero())
		assert.True(t, s.FinalSettledAmount.Equal(dec(-2000)))
		assert.True(t, s.TenantCredit.Equal(dec(2000)))
	})

	t.Run("due larger than deposit applies whole deposit", func(t *testing.T) {
		s := ComputeSettlement(SettlementInput{
			CurrentDue:         dec(20000),
			SecurityDeposit:    dec(6000),
			UseSecurityDeposit: true,
		})
		assert.True(t, s.DepositApplied.Equal(dec(6000)))
		assert.True(t, s.FinalSettledAmount.Equal(dec(14000)))
		assert.True(t, s.RemainingSecurityDeposit.IsZero())
	})

	t.Run("already-consumed deposit is not applied twice", func(t *testing.T) {
		s := ComputeSettlement(SettlementInput{
			CurrentDue:          dec(5000),
			SecurityDeposit:     dec(6000),
			SecurityDepositUsed: dec(4000),
			UseSecurityDeposit:  true,
		})
		assert.True(t, s.DepositApplied.Equal(dec(2000)))
		assert.True(t, s.FinalSettledAmount.Equal(dec(3000)))
		assert.True(t, s.RemainingSecurityDeposit.IsZero())
	})
}

func TestComputeSettlement_OwnerAdjustmentReducesDue(t *testing.T) {
	s := ComputeSettlement(SettlementInput{
		CurrentDue:      dec(5000),
		OwnerAdjustment: dec(1500),
	})
	assert.True(t, s.FinalSettledAmount.Equal(dec(3500)))
	assert.True(t, s.TenantCredit.IsZero())
}

func TestComputeSettlement_ClampProperty(t *testing.T) {
	// For any non-negative due and deposit: applied <= deposit and
	// applied <= max(amount, 0).
	cases := []struct{ due, deposit int64 }{
		{0, 0}, {0, 5000}, {100, 50}, {50, 100}, {9999, 9999}, {12345, 67},
	}
	for _, tc := range cases {
		s := ComputeSettlement(SettlementInput{
			CurrentDue:         dec(tc.due),
			SecurityDeposit:    dec(tc.deposit),
			UseSecurityDeposit: true,
		})
		assert.True(t, s.DepositApplied.LessThanOrEqual(dec(tc.deposit)),
			"due=%d deposit=%d", tc.due, tc.deposit)
		assert.True(t, s.DepositApplied.LessThanOrEqual(decimal.Max(dec(tc.due), decimal.Zero)),
			"due=%d deposit=%d", tc.due, tc.deposit)
		assert.False(t, s.DepositApplied.IsNegative())
	}
}
