package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is a staff bio shown on the marketing site
type TeamMember struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Title         string    `gorm:"type:varchar(255)" json:"title"`
	Bio           string    `gorm:"type:text" json:"bio"`
	ImageURL      string    `gorm:"type:varchar(500);not null" json:"image_url"`
	ImagePublicID string    `gorm:"type:varchar(255);not null" json:"image_public_id"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
