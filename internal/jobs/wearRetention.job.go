package jobs

import (
	"context"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type RetractedWearPurger interface {
	PurgeRetracted(ctx context.Context) (int64, error)
}

// WearRetentionJob removes retracted wear events past the retention period.
type WearRetentionJob struct {
	purger   RetractedWearPurger
	log      logger.Logger
	schedule services.Schedule
}

func NewWearRetentionJob(purger RetractedWearPurger, schedule services.Schedule) *WearRetentionJob {
	log := logger.New("wearRetentionJob")
	log.Info("Creating new wear retention job", "schedule", schedule)

	return &WearRetentionJob{
		purger:   purger,
		log:      log,
		schedule: schedule,
	}
}

func (j *WearRetentionJob) Name() string {
	return "WearRetention"
}

func (j *WearRetentionJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	purged, err := j.purger.PurgeRetracted(ctx)
	if err != nil {
		return log.Err("wear retention failed", err)
	}

	log.Info("Wear retention completed", "purged", purged)
	return nil
}

func (j *WearRetentionJob) Schedule() services.Schedule {
	return j.schedule
}
