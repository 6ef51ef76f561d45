package models

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrEmptyWearEvent       = errors.New("wear event must reference at least one item")
	ErrEmptyOutfit          = errors.New("outfit must contain at least one item")
	ErrInvalidWearSource    = errors.New("invalid wear source")
)
