package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner represents a property owner. Shops are either solely owned
// (shop.owner_id set) or held in common by all owners.
type Owner struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Phone             *string        `gorm:"size:50" json:"phone,omitempty"`
	Email             *string        `gorm:"size:255" json:"email,omitempty"`
	Address           *string        `gorm:"type:text" json:"address,omitempty"`
	BankName          *string        `gorm:"size:255" json:"bank_name,omitempty"`
	AccountHolder     *string        `gorm:"size:255" json:"account_holder,omitempty"`
	AccountNumber     *string        `gorm:"size:100" json:"account_number,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shops    []Shop        `gorm:"foreignKey:OwnerID" json:"-"`
	Deposits []BankDeposit `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new owner
func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Owner model
func (Owner) TableName() string {
	return "owners"
}
