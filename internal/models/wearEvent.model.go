package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WearSource string

const (
	WearSourceAIRecommendation WearSource = "ai_recommendation"
	WearSourceSavedOutfit      WearSource = "saved_outfit"
	WearSourceManualOutfit     WearSource = "manual_outfit"
)

func (s WearSource) IsValid() bool {
	switch s {
	case WearSourceAIRecommendation, WearSourceSavedOutfit, WearSourceManualOutfit:
		return true
	}
	return false
}

// WearEvent records that a user wore a set of items on a calendar date. Rows are
// append-only; a retraction soft-deletes the row.
type WearEvent struct {
	BaseUUIDModel
	UserID     uuid.UUID                      `gorm:"type:uuid;not null;index:idx_wear_events_user_date,priority:1" json:"userId"`
	User       *User                          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"                 json:"-"`
	OccurredOn time.Time                      `gorm:"type:date;not null;index:idx_wear_events_user_date,priority:2" json:"occurredOn"`
	OutfitID   *uuid.UUID                     `gorm:"type:uuid;index"                                               json:"outfitId,omitempty"`
	Source     WearSource                     `gorm:"type:text;not null;check:chk_wear_events_source,source IN ('ai_recommendation','saved_outfit','manual_outfit')" json:"source"`
	ItemIDs    datatypes.JSONSlice[uuid.UUID] `gorm:"not null"                                                      json:"itemIds"`
	Notes      string                         `gorm:"type:text"                                                     json:"notes,omitempty"`
}

func (WearEvent) TableName() string {
	return "wear_events"
}

func (w *WearEvent) BeforeCreate(tx *gorm.DB) error {
	if err := w.BaseUUIDModel.BeforeCreate(tx); err != nil {
		return err
	}

	if w.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}

	w.ItemIDs = UniqueItemIDs(w.ItemIDs)
	if len(w.ItemIDs) == 0 {
		return ErrEmptyWearEvent
	}

	if !w.Source.IsValid() {
		return ErrInvalidWearSource
	}

	w.OccurredOn = DateOf(w.OccurredOn)
	return nil
}

// IsRetracted reports whether the event was soft-deleted.
func (w *WearEvent) IsRetracted() bool {
	return w.DeletedAt.Valid
}

func (w *WearEvent) HasItem(itemID uuid.UUID) bool {
	return slices.Contains(w.ItemIDs, itemID)
}

// UniqueItemIDs drops nil and duplicate ids, keeping first-seen order.
func UniqueItemIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// DateOf reduces t to its calendar date (as read in t's own location) at
// midnight UTC, which is how occurred_on is stored and compared.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
