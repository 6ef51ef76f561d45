package models

import (
	"strings"

	"gorm.io/gorm"
)

// User mirrors the account row owned by the auth layer. This service only needs
// to know that a user reference resolves.
type User struct {
	BaseUUIDModel
	DisplayName string  `gorm:"type:text"               json:"displayName"`
	Email       *string `gorm:"type:text;uniqueIndex"   json:"email"`
	IsActive    bool    `gorm:"type:bool;default:true"  json:"isActive"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.BaseUUIDModel.BeforeCreate(tx); err != nil {
		return err
	}

	u.DisplayName = strings.TrimSpace(u.DisplayName)
	if u.DisplayName == "" && u.Email != nil {
		u.DisplayName = strings.Split(*u.Email, "@")[0]
	}
	return nil
}
