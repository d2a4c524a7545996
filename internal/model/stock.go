package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock line types
const (
	StockTypeChemical = "CHEMICAL"
	StockTypeLeather  = "LEATHER"
)

// Stock is one raw-material line owned by a department. Quantity is a
// plain integer; negative values are not rejected.
type Stock struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Type         string    `gorm:"type:varchar(20);not null;index" json:"type"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Quantity     int       `gorm:"type:int;not null" json:"quantity"`
	DepartmentID string    `gorm:"type:varchar(50);index" json:"department_id"`
	AddedBy      string    `gorm:"type:varchar(50)" json:"added_by"`
	Unit         string    `gorm:"type:varchar(50)" json:"unit"` // kg, liters, sq ft...
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
