package services

import (
	"context"
	"fmt"
	"time"
	"wardrobe/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// WearRetentionService hard-deletes retracted wear events once they are older
// than the retention period. Live events are never removed.
type WearRetentionService struct {
	wearRepo      repositories.WearEventRepository
	retentionDays int
	now           func() time.Time
	db            *gorm.DB
	log           logger.Logger
}

func NewWearRetentionService(
	repos repositories.Repository,
	retentionDays int,
	db *gorm.DB,
) *WearRetentionService {
	return &WearRetentionService{
		wearRepo:      repos.WearEvent,
		retentionDays: retentionDays,
		now:           time.Now,
		db:            db,
		log:           logger.New("wearRetentionService"),
	}
}

func (s *WearRetentionService) Cutoff() time.Time {
	return s.now().UTC().AddDate(0, 0, -s.retentionDays)
}

// PurgeRetracted returns how many rows were removed.
func (s *WearRetentionService) PurgeRetracted(ctx context.Context) (int64, error) {
	log := s.log.Function("PurgeRetracted")

	if s.retentionDays <= 0 {
		return 0, fmt.Errorf("%w: retention days must be positive", ErrInvalidConfiguration)
	}

	cutoff := s.Cutoff()
	purged, err := s.wearRepo.PurgeDeletedBefore(ctx, s.db, cutoff)
	if err != nil {
		return 0, log.Err("failed to purge retracted wear events", err, "cutoff", cutoff)
	}

	log.Info("Purged retracted wear events", "count", purged, "cutoff", cutoff)
	return purged, nil
}
