package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tenant represents a person renting one or more shops.
// OpeningDueBalance is pre-system debt not tied to a specific lease.
type Tenant struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name              string          `gorm:"size:255;not null" json:"name"`
	Phone             *string         `gorm:"size:50" json:"phone,omitempty"`
	Email             *string         `gorm:"size:255" json:"email,omitempty"`
	NationalID        *string         `gorm:"size:100" json:"national_id,omitempty"`
	Address           *string         `gorm:"type:text" json:"address,omitempty"`
	OpeningDueBalance decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"opening_due_balance"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Leases   []Lease   `gorm:"foreignKey:TenantID" json:"-"`
	Payments []Payment `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tenant
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Tenant model
func (Tenant) TableName() string {
	return "tenants"
}
