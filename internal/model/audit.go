package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// Audited entity types
const (
	EntityLeather     = "leather"
	EntityCategory    = "category"
	EntityTestimonial = "testimonial"
	EntityTeam        = "team"
	EntityContact     = "contact-us"
	EntityDepartment  = "department"
	EntityOrder       = "order"
	EntityStock       = "stock"
	EntityUser        = "user"
	EntityDocument    = "document"
)

// AuditLog is one immutable record of a mutation: who changed what entity,
// with before/after snapshots. Audit records outlive the entities they
// describe; there is no foreign key back to the mutated row.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Action     string    `gorm:"type:varchar(20);not null;index" json:"action"`
	EntityType string    `gorm:"type:varchar(50);not null;index" json:"entity_type"`
	EntityID   string    `gorm:"type:varchar(50);not null;index" json:"entity_id"`
	UserID     string    `gorm:"type:varchar(50);not null;index" json:"user_id"`
	OldData    *string   `gorm:"type:jsonb" json:"old_data"` // nil for create
	NewData    *string   `gorm:"type:jsonb" json:"new_data"` // nil for hard delete
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
