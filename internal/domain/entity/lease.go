package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lease binds a tenant to a shop. Only Active and Terminated are stored in
// Status; expiring_soon/expired are derived from EndDate when the lease is read.
// OpeningDueBalance is pre-system debt specific to this shop/lease.
type Lease struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TenantID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ShopID              uuid.UUID        `gorm:"type:uuid;not null;index" json:"shop_id"`
	StartDate           time.Time        `gorm:"type:date;not null" json:"start_date"`
	EndDate             *time.Time       `gorm:"type:date" json:"end_date,omitempty"`
	MonthlyRent         decimal.Decimal  `gorm:"type:decimal(20,2);not null" json:"monthly_rent"`
	SecurityDeposit     decimal.Decimal  `gorm:"type:decimal(20,2);default:0" json:"security_deposit"`
	SecurityDepositUsed decimal.Decimal  `gorm:"type:decimal(20,2);default:0" json:"security_deposit_used"`
	OpeningDueBalance   decimal.Decimal  `gorm:"type:decimal(20,2);default:0" json:"opening_due_balance"`
	Status              enum.LeaseStatus `gorm:"default:0;index" json:"status"`
	Notes               *string          `gorm:"type:text" json:"notes,omitempty"`
	TerminatedAt        *time.Time       `json:"terminated_at,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Tenant      Tenant           `gorm:"foreignKey:TenantID" json:"-"`
	Shop        Shop             `gorm:"foreignKey:ShopID" json:"-"`
	Invoices    []RentInvoice    `gorm:"foreignKey:LeaseID" json:"-"`
	Payments    []Payment        `gorm:"foreignKey:LeaseID" json:"-"`
	Adjustments []RentAdjustment `gorm:"foreignKey:LeaseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new lease
func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lease model
func (Lease) TableName() string {
	return "leases"
}

// RentAdjustment records a prospective change of a lease's monthly rent.
// Already-issued invoices keep the amount they were created with.
type RentAdjustment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LeaseID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"lease_id"`
	PreviousRent     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"previous_rent"`
	NewRent          decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"new_rent"`
	AdjustmentAmount decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"adjustment_amount"` // signed
	EffectiveDate    time.Time       `gorm:"type:date;not null" json:"effective_date"`
	CreatedAt        time.Time       `json:"created_at"`

	// Relationships
	Lease Lease `gorm:"foreignKey:LeaseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new rent adjustment
func (a *RentAdjustment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RentAdjustment model
func (RentAdjustment) TableName() string {
	return "rent_adjustments"
}
