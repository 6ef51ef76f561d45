package controllers

import (
	"wardrobe/config"
	"wardrobe/internal/services"

	eligibilityController "wardrobe/internal/controllers/eligibility"
	preferenceController "wardrobe/internal/controllers/preferences"
	wardrobeController "wardrobe/internal/controllers/wardrobe"
	wearController "wardrobe/internal/controllers/wear"
)

type Controllers struct {
	Preference  preferenceController.PreferenceControllerInterface
	Wear        wearController.WearControllerInterface
	Eligibility eligibilityController.EligibilityControllerInterface
	Wardrobe    wardrobeController.WardrobeControllerInterface
}

func New(services services.Service, config config.Config) Controllers {
	return Controllers{
		Preference:  preferenceController.New(services, config),
		Wear:        wearController.New(services, config),
		Eligibility: eligibilityController.New(services, config),
		Wardrobe:    wardrobeController.New(services, config),
	}
}
