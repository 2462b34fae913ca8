package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is money received from a tenant against a lease. RentMonths lists
// the "YYYY-MM" periods the payment is applied against; a single payment may
// cover several months or none (opening dues). The labels are advisory: the
// authoritative amount is the payment total, never a per-month split.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LeaseID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"lease_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	PaymentDate   time.Time       `gorm:"type:date;not null" json:"payment_date"`
	RentMonths    RentMonthList   `gorm:"type:jsonb;serializer:json" json:"rent_months"`
	ReceiptNumber string          `gorm:"size:100;unique;not null" json:"receipt_number"`
	Notes         *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	Lease  Lease  `gorm:"foreignKey:LeaseID" json:"-"`
}

// RentMonthList is a list of "YYYY-MM" period keys
type RentMonthList []string

// Contains reports whether the list includes the given period key
func (l RentMonthList) Contains(key string) bool {
	for _, m := range l {
		if m == key {
			return true
		}
	}
	return false
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
