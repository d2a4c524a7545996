package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a client quote shown on the marketing site
type Testimonial struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientName    string    `gorm:"type:varchar(255);not null" json:"client_name"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	Country       string    `gorm:"type:varchar(100);not null" json:"country"`
	ImageURL      string    `gorm:"type:varchar(500);not null" json:"image_url"`
	ImagePublicID string    `gorm:"type:varchar(255);not null" json:"image_public_id"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
