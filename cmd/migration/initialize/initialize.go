package initialize

import (
	"context"
	"wardrobe/internal/database"
	. "wardrobe/internal/models"
	"wardrobe/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

// InitializeTables backfills a default no-repeat row for every user that has
// none. Safe to run on every deploy.
func InitializeTables(db database.DB, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	if err := backfillPreferences(db, log); err != nil {
		return log.Err("failed to backfill preferences", err)
	}

	log.Info("Table initialization complete")
	return nil
}

func backfillPreferences(db database.DB, log logger.Logger) error {
	ctx := context.Background()
	repos := repositories.New(db)

	var userIDs []uuid.UUID
	err := db.SQL.WithContext(ctx).
		Model(&User{}).
		Joins("LEFT JOIN prefs ON prefs.user_id = users.id").
		Where("prefs.user_id IS NULL").
		Pluck("users.id", &userIDs).Error
	if err != nil {
		return log.Err("failed to find users without preferences", err)
	}

	created := 0
	for _, userID := range userIDs {
		ok, err := repos.Preference.CreateDefaults(ctx, db.SQL, userID)
		if err != nil {
			return log.Err("failed to create default preference", err, "userID", userID)
		}
		if ok {
			created++
		}
	}

	log.Info("Preference backfill complete", "created", created)
	return nil
}
