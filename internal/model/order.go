package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order workflow statuses. Status is a free-form field: any status can be
// set from any status, there is no transition table. Clients rely on
// moving orders backwards, so do not add validation here.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusInProcess = "IN_PROCESS"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusDelivered = "DELIVERED"
)

// Order is one internal production order routed across departments
type Order struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	Status            string    `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Reason            string    `gorm:"type:text" json:"reason"`
	CurrentDepartment string    `gorm:"type:varchar(50);index" json:"current_department"`
	AssignedTo        string    `gorm:"type:varchar(50)" json:"assigned_to"`
	CreatedBy         string    `gorm:"type:varchar(50);not null" json:"created_by"`
	NextDepartment    string    `gorm:"type:varchar(50)" json:"next_department"`
	Machine           string    `gorm:"type:varchar(100)" json:"machine"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
