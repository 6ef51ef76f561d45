package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Item struct {
	BaseUUIDModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"                      json:"userId"`
	User   *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name   string    `gorm:"type:text;not null"                            json:"name"`
}

// Outfit is a named, persisted combination of items. Its composition may change
// over time; wear events keep their own copy of the item ids.
type Outfit struct {
	BaseUUIDModel
	UserID  uuid.UUID                      `gorm:"type:uuid;not null;index"                      json:"userId"`
	User    *User                          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name    string                         `gorm:"type:text;not null"                            json:"name"`
	ItemIDs datatypes.JSONSlice[uuid.UUID] `gorm:"not null"                                      json:"itemIds"`
}

func (o *Outfit) BeforeCreate(tx *gorm.DB) error {
	if err := o.BaseUUIDModel.BeforeCreate(tx); err != nil {
		return err
	}

	o.ItemIDs = UniqueItemIDs(o.ItemIDs)
	if len(o.ItemIDs) == 0 {
		return ErrEmptyOutfit
	}
	return nil
}
