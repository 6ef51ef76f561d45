package seed

import (
	"context"
	"time"
	"wardrobe/config"
	"wardrobe/internal/database"
	. "wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

var DemoUserID = uuid.MustParse("0192f1a0-0000-7000-8000-000000000001")

func stringPtr(s string) *string {
	return &s
}

// Seed creates a demo user with a small wardrobe and a week of wear history,
// then logs a bearer token for it.
func Seed(db database.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	ctx := context.Background()
	repos := repositories.New(db)

	user := &User{
		BaseUUIDModel: BaseUUIDModel{ID: DemoUserID},
		DisplayName:   "Demo User",
		Email:         stringPtr("demo@example.com"),
		IsActive:      true,
	}
	if err := repos.User.Create(ctx, db.SQL, user); err != nil {
		return log.Err("failed to create demo user", err)
	}

	if _, err := repos.Preference.CreateDefaults(ctx, db.SQL, user.ID); err != nil {
		return log.Err("failed to create demo preference", err)
	}

	names := []string{"White oxford", "Navy chinos", "Grey hoodie", "Black jeans", "Denim jacket"}
	items := make([]*Item, 0, len(names))
	for _, name := range names {
		item := &Item{UserID: user.ID, Name: name}
		if err := repos.Wardrobe.CreateItem(ctx, db.SQL, item); err != nil {
			return log.Err("failed to create item", err, "name", name)
		}
		items = append(items, item)
	}

	office := &Outfit{
		UserID:  user.ID,
		Name:    "Office",
		ItemIDs: []uuid.UUID{items[0].ID, items[1].ID},
	}
	weekend := &Outfit{
		UserID:  user.ID,
		Name:    "Weekend",
		ItemIDs: []uuid.UUID{items[2].ID, items[3].ID, items[4].ID},
	}
	for _, outfit := range []*Outfit{office, weekend} {
		if err := repos.Wardrobe.CreateOutfit(ctx, db.SQL, outfit); err != nil {
			return log.Err("failed to create outfit", err, "name", outfit.Name)
		}
	}

	today := DateOf(time.Now().UTC())
	events := []*WearEvent{
		{
			UserID:     user.ID,
			OccurredOn: today.AddDate(0, 0, -3),
			OutfitID:   &office.ID,
			Source:     WearSourceSavedOutfit,
			ItemIDs:    office.ItemIDs,
		},
		{
			UserID:     user.ID,
			OccurredOn: today.AddDate(0, 0, -1),
			Source:     WearSourceAIRecommendation,
			ItemIDs:    []uuid.UUID{items[2].ID, items[3].ID},
		},
	}
	if err := repos.WearEvent.CreateBatch(ctx, db.SQL, events); err != nil {
		return log.Err("failed to create wear history", err)
	}

	token, err := services.NewTokenService(config.JWTSecret).IssueToken(user.ID, 30*24*time.Hour)
	if err != nil {
		return log.Err("failed to issue demo token", err)
	}

	log.Info("Seed complete", "userID", user.ID, "items", len(items), "token", token)
	return nil
}
