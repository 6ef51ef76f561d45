package repositories

import (
	"wardrobe/internal/database"
)

type Repository struct {
	User       UserRepository
	Preference PreferenceRepository
	WearEvent  WearEventRepository
	Wardrobe   WardrobeRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:       NewUserRepository(db.Cache.User),
		Preference: NewPreferenceRepository(db.Cache.User),
		WearEvent:  NewWearEventRepository(db.Cache.User),
		Wardrobe:   NewWardrobeRepository(),
	}
}
