package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletionLog is an audit trail row written whenever a business record is
// deleted. The snapshot preserves the record as JSON for traceability.
type DeletionLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EntityType string    `gorm:"size:100;not null;index" json:"entity_type"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index" json:"entity_id"`
	Snapshot   string    `gorm:"type:text" json:"snapshot"`
	Reason     *string   `gorm:"type:text" json:"reason,omitempty"`
	DeletedBy  uuid.UUID `gorm:"type:uuid;not null" json:"deleted_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new deletion log entry
func (d *DeletionLog) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DeletionLog model
func (DeletionLog) TableName() string {
	return "deletion_logs"
}
