package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is a singleton row holding the business configuration.
type Settings struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BusinessName string `gorm:"size:100;not null" json:"business_name"`

	OpenTime    string `gorm:"size:5;not null" json:"open_time"`  // HH:mm
	CloseTime   string `gorm:"size:5;not null" json:"close_time"` // HH:mm
	WorkingDays []int  `gorm:"serializer:json" json:"working_days"`

	SlotIntervalMin int `gorm:"default:15" json:"slot_interval_min"`
	MaxAdvanceDays  int `gorm:"default:30" json:"max_advance_days"`
	MinAdvanceHours int `gorm:"default:2" json:"min_advance_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
