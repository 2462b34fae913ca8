package ledger

import "github.com/shopspring/decimal"

// SettlementInput carries everything the settlement calculation needs:
// the lease's authoritative outstanding total, its deposit state and the
// user-supplied adjustments agreed at termination time.
type SettlementInput struct {
	CurrentDue          decimal.Decimal `json:"current_due"`
	SecurityDeposit     decimal.Decimal `json:"security_deposit"`
	SecurityDepositUsed decimal.Decimal `json:"security_deposit_used"`
	TenantAdjustment    decimal.Decimal `json:"tenant_adjustment"` // added to due (e.g. damages)
	OwnerAdjustment     decimal.Decimal `json:"owner_adjustment"`  // subtracted from due (e.g. goodwill)
	UseSecurityDeposit  bool            `json:"use_security_deposit"`
}

// Settlement is the computed one-time termination balance. It is a preview:
// nothing is written back to the lease or deposit by computing it.
type Settlement struct {
	CurrentDue               decimal.Decimal `json:"current_due"`
	TenantAdjustment         decimal.Decimal `json:"tenant_adjustment"`
	OwnerAdjustment          decimal.Decimal `json:"owner_adjustment"`
	DepositApplied           decimal.Decimal `json:"deposit_applied"`
	FinalSettledAmount       decimal.Decimal `json:"final_settled_amount"` // negative means tenant credit
	TenantCredit             decimal.Decimal `json:"tenant_credit"`
	RemainingSecurityDeposit decimal.Decimal `json:"remaining_security_deposit"`
	UsedSecurityDeposit      bool            `json:"used_security_deposit"`
}

// ComputeSettlement nets the lease's dues against the termination adjustments
// and, when requested, the unused portion of the security deposit.
//
//	amount  = currentDue + tenantAdjustment - ownerAdjustment
//	applied = min(availableDeposit, max(amount, 0))   when useSecurityDeposit
//
// The applied amount is clamped so it can never exceed the deposit still
// available (deposit minus what was already consumed) nor turn a credit into
// a larger credit. A negative final amount is owed back to the tenant.
func ComputeSettlement(in SettlementInput) Settlement {
	amount := in.CurrentDue.Add(in.TenantAdjustment).Sub(in.OwnerAdjustment)

	applied := decimal.Zero
	if in.UseSecurityDeposit {
		available := in.SecurityDeposit.Sub(in.SecurityDepositUsed)
		if available.IsNegative() {
			available = decimal.Zero
		}
		applied = decimal.Min(available, decimal.Max(amount, decimal.Zero))
		amount = amount.Sub(applied)
	}

	credit := decimal.Zero
	if amount.IsNegative() {
		credit = amount.Neg()
	}

	return Settlement{
		CurrentDue:               in.CurrentDue,
		TenantAdjustment:         in.TenantAdjustment,
		OwnerAdjustment:          in.OwnerAdjustment,
		DepositApplied:           applied,
		FinalSettledAmount:       amount,
		TenantCredit:             credit,
		RemainingSecurityDeposit: in.SecurityDeposit.Sub(in.SecurityDepositUsed).Sub(applied),
		UsedSecurityDeposit:      in.UseSecurityDeposit,
	}
}
