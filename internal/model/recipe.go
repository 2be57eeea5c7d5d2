package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// JSONStringArray is a custom type for handling string arrays in a JSON
// column (jsonb on postgres, text on sqlite).
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the persisted corpus record. IDs come from the dataset, not a
// database sequence, so the primary key is not auto-incrementing.
type Recipe struct {
	ID          int             `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Cuisine     string          `gorm:"size:50;not null;index" json:"cuisine"`
	Ingredients JSONStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
