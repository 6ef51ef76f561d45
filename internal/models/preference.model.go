package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoRepeatMode string

const (
	NoRepeatModeItem   NoRepeatMode = "item"
	NoRepeatModeOutfit NoRepeatMode = "outfit"
)

const (
	DefaultNoRepeatDays = 7
	MinNoRepeatDays     = 0
	MaxNoRepeatDays     = 180
	DefaultNoRepeatMode = NoRepeatModeItem
)

func (m NoRepeatMode) IsValid() bool {
	return m == NoRepeatModeItem || m == NoRepeatModeOutfit
}

// Preference is the prefs row. Fields are pointers so an explicit 0 days is
// written instead of being replaced by the column default.
type Preference struct {
	UserID       uuid.UUID     `gorm:"type:uuid;primaryKey"                                                             json:"userId"`
	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"                                    json:"-"`
	NoRepeatDays *int          `gorm:"not null;default:7;check:chk_prefs_no_repeat_days,no_repeat_days >= 0 AND no_repeat_days <= 180"           json:"noRepeatDays"`
	NoRepeatMode *NoRepeatMode `gorm:"type:text;not null;default:'item';check:chk_prefs_no_repeat_mode,no_repeat_mode IN ('item','outfit')"      json:"noRepeatMode"`
	CreatedAt    time.Time     `gorm:"autoCreateTime"                                                                   json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime"                                                                   json:"updatedAt"`
}

func (Preference) TableName() string {
	return "prefs"
}

func (p *Preference) BeforeCreate(tx *gorm.DB) error {
	if p.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}

	if p.NoRepeatDays == nil {
		days := DefaultNoRepeatDays
		p.NoRepeatDays = &days
	}

	if p.NoRepeatMode == nil {
		mode := DefaultNoRepeatMode
		p.NoRepeatMode = &mode
	}

	return nil
}

// Policy converts the stored row into the resolved policy, filling defaults for
// any column that came back NULL.
func (p *Preference) Policy() NoRepeatPolicy {
	policy := DefaultPolicy(p.UserID)
	if p.NoRepeatDays != nil {
		policy.Days = *p.NoRepeatDays
	}
	if p.NoRepeatMode != nil {
		policy.Mode = *p.NoRepeatMode
	}
	return policy
}

// NoRepeatPolicy is the resolved no-repeat configuration for one user.
type NoRepeatPolicy struct {
	UserID uuid.UUID    `json:"userId"`
	Days   int          `json:"noRepeatDays"`
	Mode   NoRepeatMode `json:"noRepeatMode"`
}

func DefaultPolicy(userID uuid.UUID) NoRepeatPolicy {
	return NoRepeatPolicy{
		UserID: userID,
		Days:   DefaultNoRepeatDays,
		Mode:   DefaultNoRepeatMode,
	}
}

func (p NoRepeatPolicy) Validate() error {
	if p.Days < MinNoRepeatDays || p.Days > MaxNoRepeatDays {
		return fmt.Errorf(
			"%w: noRepeatDays must be between %d and %d, got %d",
			ErrInvalidConfiguration,
			MinNoRepeatDays,
			MaxNoRepeatDays,
			p.Days,
		)
	}

	if !p.Mode.IsValid() {
		return fmt.Errorf(
			"%w: noRepeatMode must be %q or %q, got %q",
			ErrInvalidConfiguration,
			NoRepeatModeItem,
			NoRepeatModeOutfit,
			p.Mode,
		)
	}

	return nil
}

// Clamp forces the policy into the valid range. The bool reports whether any
// field had to change.
func (p NoRepeatPolicy) Clamp() (NoRepeatPolicy, bool) {
	clamped := p
	switch {
	case p.Days < MinNoRepeatDays:
		clamped.Days = MinNoRepeatDays
	case p.Days > MaxNoRepeatDays:
		clamped.Days = MaxNoRepeatDays
	}

	if !p.Mode.IsValid() {
		clamped.Mode = DefaultNoRepeatMode
	}

	return clamped, clamped != p
}

func (p NoRepeatPolicy) Disabled() bool {
	return p.Days == 0
}

// Preference returns the row form of the policy.
func (p NoRepeatPolicy) Preference() *Preference {
	days := p.Days
	mode := p.Mode
	return &Preference{
		UserID:       p.UserID,
		NoRepeatDays: &days,
		NoRepeatMode: &mode,
	}
}
