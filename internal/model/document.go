package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is an uploaded business document (invoice, certificate, spec
// sheet...) hosted on the media store
type Document struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string     `gorm:"type:varchar(255);not null" json:"title"`
	OriginalFilename string     `gorm:"type:varchar(255);not null" json:"original_filename"`
	PublicURL        string     `gorm:"type:varchar(500);not null" json:"public_url"`
	PublicID         string     `gorm:"type:varchar(255);not null" json:"public_id"`
	MimeType         string     `gorm:"type:varchar(100);not null" json:"mime_type"`
	Size             int64      `gorm:"not null" json:"size"`
	Tags             StringList `gorm:"type:jsonb" json:"tags"`
	Folder           string     `gorm:"type:varchar(255);not null;index" json:"folder"`
	UploadedAt       time.Time  `gorm:"not null" json:"uploaded_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
