package services

import (
	"errors"
	"wardrobe/internal/models"
	"wardrobe/internal/validation"
)

var (
	ErrInvalidReference     = errors.New("invalid reference")
	ErrNotFound             = errors.New("not found")
	ErrValidation           = validation.ErrValidation
	ErrInvalidConfiguration = models.ErrInvalidConfiguration
)
