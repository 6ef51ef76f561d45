package repositories

import (
	"context"
	"errors"
	. "wardrobe/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WardrobeRepository interface {
	CreateItem(ctx context.Context, tx *gorm.DB, item *Item) error
	CreateOutfit(ctx context.Context, tx *gorm.DB, outfit *Outfit) error
	GetOutfit(ctx context.Context, tx *gorm.DB, userID uuid.UUID, outfitID uuid.UUID) (*Outfit, error)
	ListOutfits(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*Outfit, error)
	// CountOwnedItems counts how many of ids are items owned by userID.
	CountOwnedItems(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	CountOwnedOutfits(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type wardrobeRepository struct {
	log logger.Logger
}

func NewWardrobeRepository() WardrobeRepository {
	return &wardrobeRepository{
		log: logger.New("wardrobeRepository"),
	}
}

func (r *wardrobeRepository) CreateItem(ctx context.Context, tx *gorm.DB, item *Item) error {
	log := r.log.Function("CreateItem")

	if err := gorm.G[Item](tx).Create(ctx, item); err != nil {
		return log.Err("failed to create item", err, "userID", item.UserID, "name", item.Name)
	}

	return nil
}

func (r *wardrobeRepository) CreateOutfit(ctx context.Context, tx *gorm.DB, outfit *Outfit) error {
	log := r.log.Function("CreateOutfit")

	if err := gorm.G[Outfit](tx).Create(ctx, outfit); err != nil {
		return log.Err("failed to create outfit", err, "userID", outfit.UserID, "name", outfit.Name)
	}

	return nil
}

func (r *wardrobeRepository) GetOutfit(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	outfitID uuid.UUID,
) (*Outfit, error) {
	log := r.log.Function("GetOutfit")

	outfit, err := gorm.G[Outfit](tx).
		Where("user_id = ? AND id = ?", userID, outfitID).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, log.Err("failed to get outfit", err, "userID", userID, "outfitID", outfitID)
	}

	return &outfit, nil
}

func (r *wardrobeRepository) ListOutfits(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*Outfit, error) {
	log := r.log.Function("ListOutfits")

	var outfits []*Outfit
	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&outfits).Error
	if err != nil {
		return nil, log.Err("failed to list outfits", err, "userID", userID)
	}

	return outfits, nil
}

func (r *wardrobeRepository) CountOwnedItems(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	ids []uuid.UUID,
) (int64, error) {
	return r.countOwned(ctx, tx, &Item{}, userID, ids)
}

func (r *wardrobeRepository) CountOwnedOutfits(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	ids []uuid.UUID,
) (int64, error) {
	return r.countOwned(ctx, tx, &Outfit{}, userID, ids)
}

func (r *wardrobeRepository) countOwned(
	ctx context.Context,
	tx *gorm.DB,
	model any,
	userID uuid.UUID,
	ids []uuid.UUID,
) (int64, error) {
	log := r.log.Function("countOwned")

	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := tx.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND id IN ?", userID, ids).
		Count(&count).Error
	if err != nil {
		return 0, log.Err("failed to count owned records", err, "userID", userID, "count", len(ids))
	}

	return count, nil
}
