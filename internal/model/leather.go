package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaSection groups one optional main asset with an ordered list of
// variant assets. Variant order matches upload input order.
type MediaSection struct {
	Main     *MediaAsset  `json:"main,omitempty"`
	Variants []MediaAsset `json:"variants"`
}

// LeatherMedia is the nested media structure of a catalog item,
// persisted as a single JSONB column.
type LeatherMedia struct {
	Images MediaSection `json:"images"`
	Videos MediaSection `json:"videos"`
}

func (m LeatherMedia) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *LeatherMedia) Scan(value interface{}) error {
	if value == nil {
		*m = LeatherMedia{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for LeatherMedia")
	}
}

// Leather is one catalog item (a hide/leather type offered for sale)
type Leather struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	InStock     int          `gorm:"type:int;default:0" json:"in_stock"`
	Ratings     string       `gorm:"type:varchar(20);default:'0'" json:"ratings"`
	ReviewCount string       `gorm:"type:varchar(20);default:'0'" json:"review_count"`
	Category    string       `gorm:"type:varchar(255);not null;index" json:"category"`
	Tags        StringList   `gorm:"type:jsonb" json:"tags"`
	Media       LeatherMedia `gorm:"type:jsonb" json:"media"`
	WeightRange string       `gorm:"type:varchar(100)" json:"weight_range,omitempty"`
	Temper      string       `gorm:"type:varchar(100)" json:"temper,omitempty"`
	OilContent  string       `gorm:"type:varchar(100)" json:"oil_content,omitempty"`
	LeatherType string       `gorm:"type:varchar(100)" json:"leather_type,omitempty"`
	Texture     string       `gorm:"type:varchar(100)" json:"texture,omitempty"`
	Grading     string       `gorm:"type:varchar(100)" json:"grading,omitempty"`
	Finish      string       `gorm:"type:varchar(100)" json:"finish,omitempty"`
	Collections string       `gorm:"type:varchar(100)" json:"collections,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (l *Leather) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
