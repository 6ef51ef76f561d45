package repositories

import (
	"context"
	"time"
	"wardrobe/internal/database"
	. "wardrobe/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WEAR_WINDOW_CACHE_PREFIX = "wear_window"
	WEAR_WINDOW_CACHE_EXPIRY = 6 * time.Hour
)

type WearEventRepository interface {
	Create(ctx context.Context, tx *gorm.DB, event *WearEvent) error
	CreateBatch(ctx context.Context, tx *gorm.DB, events []*WearEvent) error
	// ListSince returns live events with occurred_on >= since, newest first.
	ListSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*WearEvent, error)
	// ListRange is ListSince with an optional inclusive upper bound; a zero until is unbounded.
	ListRange(
		ctx context.Context,
		tx *gorm.DB,
		userID uuid.UUID,
		since time.Time,
		until time.Time,
	) ([]*WearEvent, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, eventID uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) (int64, error)
	ClearCache(ctx context.Context, userID uuid.UUID) error
}

type wearEventRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

// wearWindow is the cached result of the widest ListSince query seen for a user.
type wearWindow struct {
	Since  time.Time    `json:"since"`
	Events []*WearEvent `json:"events"`
}

func NewWearEventRepository(cache database.CacheClient) WearEventRepository {
	return &wearEventRepository{
		cache: cache,
		log:   logger.New("wearEventRepository"),
	}
}

func (r *wearEventRepository) Create(ctx context.Context, tx *gorm.DB, event *WearEvent) error {
	log := r.log.Function("Create")

	if err := gorm.G[WearEvent](tx).Create(ctx, event); err != nil {
		return log.Err(
			"failed to create wear event",
			err,
			"userID", event.UserID,
			"occurredOn", event.OccurredOn,
		)
	}

	r.clearWindowCache(ctx, event.UserID)
	return nil
}

func (r *wearEventRepository) CreateBatch(
	ctx context.Context,
	tx *gorm.DB,
	events []*WearEvent,
) error {
	log := r.log.Function("CreateBatch")

	if len(events) == 0 {
		return nil
	}

	if err := tx.WithContext(ctx).Create(&events).Error; err != nil {
		return log.Err("failed to create wear event batch", err, "count", len(events))
	}

	cleared := make(map[uuid.UUID]struct{}, 1)
	for _, event := range events {
		if _, ok := cleared[event.UserID]; ok {
			continue
		}
		cleared[event.UserID] = struct{}{}
		r.clearWindowCache(ctx, event.UserID)
	}

	return nil
}

func (r *wearEventRepository) ListSince(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	since time.Time,
) ([]*WearEvent, error) {
	log := r.log.Function("ListSince")
	since = DateOf(since)

	var cached wearWindow
	found, err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(WEAR_WINDOW_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get wear window from cache", "userID", userID, "error", err)
	}

	if found && !cached.Since.After(since) {
		events := eventsSince(cached.Events, since)
		log.Debug("Wear window retrieved from cache", "userID", userID, "count", len(events))
		return events, nil
	}

	events, err := r.ListRange(ctx, tx, userID, since, time.Time{})
	if err != nil {
		return nil, err
	}

	err = database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(WEAR_WINDOW_CACHE_PREFIX).
		WithStruct(wearWindow{Since: since, Events: events}).
		WithTTL(WEAR_WINDOW_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set wear window in cache", "userID", userID, "error", err)
	}

	return events, nil
}

func (r *wearEventRepository) ListRange(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	since time.Time,
	until time.Time,
) ([]*WearEvent, error) {
	log := r.log.Function("ListRange")

	query := tx.WithContext(ctx).Where("user_id = ?", userID)
	if !since.IsZero() {
		query = query.Where("occurred_on >= ?", DateOf(since))
	}
	if !until.IsZero() {
		query = query.Where("occurred_on <= ?", DateOf(until))
	}

	var events []*WearEvent
	if err := query.Order("occurred_on DESC").Order("id ASC").Find(&events).Error; err != nil {
		return nil, log.Err("failed to list wear events", err, "userID", userID, "since", since)
	}

	return events, nil
}

func (r *wearEventRepository) SoftDelete(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	eventID uuid.UUID,
) error {
	log := r.log.Function("SoftDelete")

	rowsAffected, err := gorm.G[WearEvent](tx).
		Where("user_id = ? AND id = ?", userID, eventID).
		Delete(ctx)
	if err != nil {
		return log.Err(
			"failed to retract wear event",
			err,
			"userID", userID,
			"eventID", eventID,
		)
	}

	if rowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.clearWindowCache(ctx, userID)
	return nil
}

// PurgeDeletedBefore hard-deletes events retracted before cutoff. Live rows are
// never touched.
func (r *wearEventRepository) PurgeDeletedBefore(
	ctx context.Context,
	tx *gorm.DB,
	cutoff time.Time,
) (int64, error) {
	log := r.log.Function("PurgeDeletedBefore")

	result := tx.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&WearEvent{})
	if result.Error != nil {
		return 0, log.Err("failed to purge retracted wear events", result.Error, "cutoff", cutoff)
	}

	return result.RowsAffected, nil
}

func (r *wearEventRepository) ClearCache(ctx context.Context, userID uuid.UUID) error {
	return database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(WEAR_WINDOW_CACHE_PREFIX).
		Delete()
}

func (r *wearEventRepository) clearWindowCache(ctx context.Context, userID uuid.UUID) {
	if err := r.ClearCache(ctx, userID); err != nil {
		r.log.Function("clearWindowCache").
			Warn("failed to clear wear window cache", "userID", userID, "error", err)
	}
}

func eventsSince(events []*WearEvent, since time.Time) []*WearEvent {
	filtered := make([]*WearEvent, 0, len(events))
	for _, event := range events {
		if !DateOf(event.OccurredOn).Before(since) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
