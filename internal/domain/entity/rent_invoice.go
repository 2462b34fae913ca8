package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RentInvoice is one calendar month's rent due for a lease. Invoices are
// generated lazily up to the current month; the amount captures the rent in
// effect at creation time and is not changed by later adjustments.
type RentInvoice struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LeaseID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"lease_id"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	DueDate   time.Time       `gorm:"type:date;not null" json:"due_date"`
	Month     int             `gorm:"not null" json:"month"` // 1-12
	Year      int             `gorm:"not null" json:"year"`
	IsPaid    bool            `gorm:"default:false" json:"is_paid"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Lease  Lease  `gorm:"foreignKey:LeaseID" json:"-"`
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new rent invoice
func (i *RentInvoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RentInvoice model
func (RentInvoice) TableName() string {
	return "rent_invoices"
}

// PeriodKey returns the "YYYY-MM" key of the invoice's month
func (i *RentInvoice) PeriodKey() string {
	return fmt.Sprintf("%04d-%02d", i.Year, i.Month)
}
