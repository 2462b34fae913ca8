package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Shop represents a rentable unit in the estate. Status is driven by the
// lease lifecycle: occupied on lease creation, vacant on termination.
type Shop struct {
	ID               uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ShopNumber       string                 `gorm:"size:50;unique;not null" json:"shop_number"`
	Floor            enum.ShopFloor         `gorm:"default:0" json:"floor"`
	SubedariCategory *enum.SubedariCategory `json:"subedari_category,omitempty"` // only when floor=subedari
	Status           enum.ShopStatus        `gorm:"default:0;index" json:"status"`
	OwnershipType    enum.OwnershipType     `gorm:"default:0" json:"ownership_type"`
	OwnerID          *uuid.UUID             `gorm:"type:uuid;index" json:"owner_id,omitempty"` // null for common ownership
	Description      *string                `gorm:"type:text" json:"description,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	DeletedAt        gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Owner  *Owner  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Leases []Lease `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shop
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}
