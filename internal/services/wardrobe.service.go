package services

import (
	"context"
	"fmt"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/internal/utils"
	"wardrobe/internal/validation"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateItemRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CreateOutfitRequest struct {
	Name    string      `json:"name"    validate:"required,max=200"`
	ItemIDs []uuid.UUID `json:"itemIds" validate:"required,min=1,max=50"`
}

// WardrobeService registers the item and outfit identities that wear events
// and eligibility checks refer to.
type WardrobeService struct {
	wardrobeRepo repositories.WardrobeRepository
	validator    *validation.Validator
	db           *gorm.DB
	log          logger.Logger
}

func NewWardrobeService(
	repos repositories.Repository,
	validator *validation.Validator,
	db *gorm.DB,
) *WardrobeService {
	return &WardrobeService{
		wardrobeRepo: repos.Wardrobe,
		validator:    validator,
		db:           db,
		log:          logger.New("wardrobeService"),
	}
}

func (s *WardrobeService) CreateItem(
	ctx context.Context,
	userID uuid.UUID,
	request CreateItemRequest,
) (*models.Item, error) {
	log := s.log.TraceFromContext(ctx).Function("CreateItem")

	request.Name = utils.CleanText(request.Name)
	if err := s.validator.Validate(request); err != nil {
		return nil, err
	}

	item := &models.Item{UserID: userID, Name: request.Name}
	if err := s.wardrobeRepo.CreateItem(ctx, s.db, item); err != nil {
		return nil, log.Err("failed to create item", err, "userID", userID)
	}

	log.Info("Item created", "userID", userID, "itemID", item.ID)
	return item, nil
}

func (s *WardrobeService) CreateOutfit(
	ctx context.Context,
	userID uuid.UUID,
	request CreateOutfitRequest,
) (*models.Outfit, error) {
	log := s.log.TraceFromContext(ctx).Function("CreateOutfit")

	request.Name = utils.CleanText(request.Name)
	if err := s.validator.Validate(request); err != nil {
		return nil, err
	}

	itemIDs := models.UniqueItemIDs(request.ItemIDs)
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("%w: itemIds must reference at least one item", ErrValidation)
	}

	owned, err := s.wardrobeRepo.CountOwnedItems(ctx, s.db, userID, itemIDs)
	if err != nil {
		return nil, err
	}
	if owned != int64(len(itemIDs)) {
		return nil, fmt.Errorf(
			"%w: %d of %d items are not owned by the user",
			ErrInvalidReference,
			int64(len(itemIDs))-owned,
			len(itemIDs),
		)
	}

	outfit := &models.Outfit{UserID: userID, Name: request.Name, ItemIDs: itemIDs}
	if err := s.wardrobeRepo.CreateOutfit(ctx, s.db, outfit); err != nil {
		return nil, log.Err("failed to create outfit", err, "userID", userID)
	}

	log.Info("Outfit created", "userID", userID, "outfitID", outfit.ID, "items", len(itemIDs))
	return outfit, nil
}

func (s *WardrobeService) ListOutfits(ctx context.Context, userID uuid.UUID) ([]*models.Outfit, error) {
	outfits, err := s.wardrobeRepo.ListOutfits(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if outfits == nil {
		outfits = []*models.Outfit{}
	}
	return outfits, nil
}
