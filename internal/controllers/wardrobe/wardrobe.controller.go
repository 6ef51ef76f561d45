package wardrobeController

import (
	"context"
	"wardrobe/config"
	. "wardrobe/internal/models"
	"wardrobe/internal/services"
)

type WardrobeController struct {
	wardrobeService *services.WardrobeService
	Config          config.Config
}

type WardrobeControllerInterface interface {
	CreateItem(ctx context.Context, user *User, request *services.CreateItemRequest) (*Item, error)
	CreateOutfit(
		ctx context.Context,
		user *User,
		request *services.CreateOutfitRequest,
	) (*Outfit, error)
	ListOutfits(ctx context.Context, user *User) ([]*Outfit, error)
}

func New(services services.Service, config config.Config) WardrobeControllerInterface {
	return &WardrobeController{
		wardrobeService: services.Wardrobe,
		Config:          config,
	}
}

func (c *WardrobeController) CreateItem(
	ctx context.Context,
	user *User,
	request *services.CreateItemRequest,
) (*Item, error) {
	return c.wardrobeService.CreateItem(ctx, user.ID, *request)
}

func (c *WardrobeController) CreateOutfit(
	ctx context.Context,
	user *User,
	request *services.CreateOutfitRequest,
) (*Outfit, error) {
	return c.wardrobeService.CreateOutfit(ctx, user.ID, *request)
}

func (c *WardrobeController) ListOutfits(ctx context.Context, user *User) ([]*Outfit, error) {
	return c.wardrobeService.ListOutfits(ctx, user.ID)
}
