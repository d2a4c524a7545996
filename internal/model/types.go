package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// MediaAsset is one externally hosted binary: a servable URL plus the
// public ID needed to delete it from the media store.
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// StringList stores a string slice as a JSONB column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}
