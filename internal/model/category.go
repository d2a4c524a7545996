package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups catalog items for the storefront. Carries one required
// image and one optional video. Soft-deletable via IsActive.
type Category struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	ImageURL      string    `gorm:"type:varchar(500);not null" json:"image_url"`
	ImagePublicID string    `gorm:"type:varchar(255);not null" json:"image_public_id"`
	VideoURL      string    `gorm:"type:varchar(500)" json:"video_url,omitempty"`
	VideoPublicID string    `gorm:"type:varchar(255)" json:"video_public_id,omitempty"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
