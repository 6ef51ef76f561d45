package repositories

import (
	"context"
	"errors"
	"time"
	"wardrobe/internal/database"
	. "wardrobe/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	PREFERENCE_CACHE_PREFIX = "prefs"
	PREFERENCE_CACHE_EXPIRY = 24 * time.Hour
)

type PreferenceRepository interface {
	// GetByUserID returns nil, nil when the user has no stored row.
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*Preference, error)
	Upsert(ctx context.Context, tx *gorm.DB, preference *Preference) error
	CreateDefaults(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (bool, error)
	ClearCache(ctx context.Context, userID uuid.UUID) error
}

type preferenceRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewPreferenceRepository(cache database.CacheClient) PreferenceRepository {
	return &preferenceRepository{
		cache: cache,
		log:   logger.New("preferenceRepository"),
	}
}

func (r *preferenceRepository) GetByUserID(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (*Preference, error) {
	log := r.log.Function("GetByUserID")

	var cached Preference
	found, err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(PREFERENCE_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get preference from cache", "userID", userID, "error", err)
	}

	if found {
		log.Debug("Preference retrieved from cache", "userID", userID)
		return &cached, nil
	}

	preference, err := gorm.G[Preference](tx).Where("user_id = ?", userID).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get preference", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(PREFERENCE_CACHE_PREFIX).
		WithStruct(preference).
		WithTTL(PREFERENCE_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set preference in cache", "userID", userID, "error", err)
	}

	return &preference, nil
}

// Upsert writes both columns; concurrent writers resolve last-writer-wins.
func (r *preferenceRepository) Upsert(
	ctx context.Context,
	tx *gorm.DB,
	preference *Preference,
) error {
	log := r.log.Function("Upsert")

	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"no_repeat_days",
			"no_repeat_mode",
			"updated_at",
		}),
	}).Create(preference).Error
	if err != nil {
		return log.Err("failed to upsert preference", err, "userID", preference.UserID)
	}

	if err := r.ClearCache(ctx, preference.UserID); err != nil {
		log.Warn("failed to clear preference cache", "userID", preference.UserID, "error", err)
	}

	return nil
}

// CreateDefaults inserts the default row unless one already exists. The bool
// reports whether a row was written.
func (r *preferenceRepository) CreateDefaults(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (bool, error) {
	log := r.log.Function("CreateDefaults")

	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Preference{UserID: userID})
	if result.Error != nil {
		return false, log.Err("failed to create default preference", result.Error, "userID", userID)
	}

	if result.RowsAffected > 0 {
		if err := r.ClearCache(ctx, userID); err != nil {
			log.Warn("failed to clear preference cache", "userID", userID, "error", err)
		}
	}

	return result.RowsAffected > 0, nil
}

func (r *preferenceRepository) ClearCache(ctx context.Context, userID uuid.UUID) error {
	return database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(PREFERENCE_CACHE_PREFIX).
		Delete()
}
