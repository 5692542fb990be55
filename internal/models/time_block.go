package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BlockLunch    = "LUNCH"
	BlockBreak    = "BREAK"
	BlockDayOff   = "DAY_OFF"
	BlockVacation = "VACATION"
	BlockCustom   = "CUSTOM"
)

// TimeBlock marks an interval in which no appointment may be booked.
// Recurring blocks repeat the hour range of StartsAt/EndsAt on each
// weekday listed in RecurringDays.
type TimeBlock struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type   string `gorm:"size:20;default:'CUSTOM'" json:"type"`
	Reason string `gorm:"size:255" json:"reason,omitempty"`

	StartsAt time.Time `gorm:"not null" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`

	IsRecurring   bool  `gorm:"default:false" json:"is_recurring"`
	RecurringDays []int `gorm:"serializer:json" json:"recurring_days"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *TimeBlock) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
