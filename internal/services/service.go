package services

import (
	"wardrobe/config"
	"wardrobe/internal/database"
	"wardrobe/internal/repositories"
	"wardrobe/internal/utils"
	"wardrobe/internal/validation"
)

type Service struct {
	Transaction   *TransactionService
	Scheduler     *SchedulerService
	Preference    *PreferenceService
	Eligibility   *EligibilityService
	Wear          *WearService
	Wardrobe      *WardrobeService
	WearRetention *WearRetentionService
	Token         *TokenService
	Calendar      *utils.Calendar
}

func New(db database.DB, repos repositories.Repository, config config.Config) (Service, error) {
	location, err := config.Location()
	if err != nil {
		return Service{}, err
	}

	calendar := utils.NewCalendar(location)
	validator := validation.New()
	transactionService := NewTransactionService(db)
	preferenceService := NewPreferenceService(repos, db.SQL)

	return Service{
		Transaction: transactionService,
		Scheduler:   NewSchedulerService(),
		Preference:  preferenceService,
		Eligibility: NewEligibilityService(preferenceService, repos, validator, db.SQL),
		Wear:        NewWearService(repos, transactionService, validator, calendar, db.SQL),
		Wardrobe:    NewWardrobeService(repos, validator, db.SQL),
		WearRetention: NewWearRetentionService(
			repos,
			config.WearRetentionDays,
			db.SQL,
		),
		Token:    NewTokenService(config.JWTSecret),
		Calendar: calendar,
	}, nil
}
