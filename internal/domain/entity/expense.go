package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent on the estate. Owner-allocated expenses are billed
// to one owner; common expenses are split equally across all owners in
// reporting. When LeaseID is set the expense is chargeable to that lease's
// tenant and feeds the ledger's grand total.
type Expense struct {
	ID          uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ExpenseType string                 `gorm:"size:255;not null" json:"expense_type"`
	Amount      decimal.Decimal        `gorm:"type:decimal(20,2);not null" json:"amount"`
	ExpenseDate time.Time              `gorm:"type:date;not null" json:"expense_date"`
	Allocation  enum.ExpenseAllocation `gorm:"default:1" json:"allocation"`
	OwnerID     *uuid.UUID             `gorm:"type:uuid;index" json:"owner_id,omitempty"` // null when common
	LeaseID     *uuid.UUID             `gorm:"type:uuid;index" json:"lease_id,omitempty"` // set when tenant-chargeable
	Notes       *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	DeletedAt   gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Owner *Owner `gorm:"foreignKey:OwnerID" json:"-"`
	Lease *Lease `gorm:"foreignKey:LeaseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
