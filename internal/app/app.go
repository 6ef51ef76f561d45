package app

import (
	"context"
	"wardrobe/config"
	"wardrobe/internal/controllers"
	"wardrobe/internal/database"
	"wardrobe/internal/handlers/middleware"
	"wardrobe/internal/jobs"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	Config      config.Config
	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	services, err := services.New(db, repos, config)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	if err := jobs.RegisterAllJobs(services.Scheduler, config, services); err != nil {
		return &App{}, log.Err("failed to register jobs", err)
	}

	app := &App{
		Database:    db,
		Config:      config,
		Services:    services,
		Repos:       repos,
		Middleware:  middleware.New(db, config, repos, services.Token),
		Controllers: controllers.New(services, config),
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Scheduler,
		a.Services.Preference,
		a.Services.Eligibility,
		a.Services.Wear,
		a.Services.Wardrobe,
		a.Services.WearRetention,
		a.Services.Token,
		a.Services.Calendar,
		a.Repos.User,
		a.Repos.Preference,
		a.Repos.WearEvent,
		a.Repos.Wardrobe,
		a.Controllers.Preference,
		a.Controllers.Wear,
		a.Controllers.Eligibility,
		a.Controllers.Wardrobe,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

// Start launches background jobs. It is a no-op when the scheduler is disabled.
func (a *App) Start(ctx context.Context) error {
	if !a.Config.SchedulerEnabled {
		return nil
	}
	return a.Services.Scheduler.Start(ctx)
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil && a.Services.Scheduler.IsRunning() {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
