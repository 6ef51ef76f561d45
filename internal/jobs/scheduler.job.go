package jobs

import (
	"wardrobe/config"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

const (
	Daily  = services.Daily
	Hourly = services.Hourly
)

func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	services services.Service,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")

	if !config.SchedulerEnabled {
		log.Info("Scheduler disabled, skipping job registration")
		return nil
	}

	wearRetentionJob := NewWearRetentionJob(services.WearRetention, Daily)
	if err := schedulerService.AddJob(wearRetentionJob); err != nil {
		return log.Err("failed to register wear retention job", err)
	}
	log.Info(
		"Registered wear retention job",
		"schedule", Daily,
		"retentionDays", config.WearRetentionDays,
	)

	return nil
}
