package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department is a production unit orders move through (cutting, stitching,
// finishing...). AssignedTo references the department head.
type Department struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	CreatedBy  string    `gorm:"type:varchar(50);not null" json:"created_by"`
	AssignedTo string    `gorm:"type:varchar(50)" json:"assigned_to"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
