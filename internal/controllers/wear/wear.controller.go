package wearController

import (
	"context"
	"fmt"
	"time"
	"wardrobe/config"
	. "wardrobe/internal/models"
	"wardrobe/internal/services"
	"wardrobe/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type WearController struct {
	wearService *services.WearService
	Config      config.Config
	log         logger.Logger
}

type WearControllerInterface interface {
	LogWear(ctx context.Context, user *User, request *services.LogWearRequest) (*WearEvent, error)
	LogWearBatch(
		ctx context.Context,
		user *User,
		request *services.LogWearBatchRequest,
	) ([]*WearEvent, error)
	ListWear(ctx context.Context, user *User, since string, until string) ([]*WearEvent, error)
	RetractWear(ctx context.Context, user *User, eventID uuid.UUID) error
}

func New(services services.Service, config config.Config) WearControllerInterface {
	return &WearController{
		wearService: services.Wear,
		Config:      config,
		log:         logger.New("wearController"),
	}
}

func (c *WearController) LogWear(
	ctx context.Context,
	user *User,
	request *services.LogWearRequest,
) (*WearEvent, error) {
	return c.wearService.Log(ctx, user.ID, *request)
}

func (c *WearController) LogWearBatch(
	ctx context.Context,
	user *User,
	request *services.LogWearBatchRequest,
) ([]*WearEvent, error) {
	return c.wearService.LogBatch(ctx, user.ID, *request)
}

func (c *WearController) ListWear(
	ctx context.Context,
	user *User,
	since string,
	until string,
) ([]*WearEvent, error) {
	sinceDate, err := parseOptionalDate("since", since)
	if err != nil {
		return nil, err
	}

	untilDate, err := parseOptionalDate("until", until)
	if err != nil {
		return nil, err
	}

	return c.wearService.List(ctx, user.ID, sinceDate, untilDate)
}

func (c *WearController) RetractWear(ctx context.Context, user *User, eventID uuid.UUID) error {
	return c.wearService.Retract(ctx, user.ID, eventID)
}

// parseOptionalDate returns the zero time for an empty value.
func parseOptionalDate(field string, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	date, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %v", services.ErrValidation, field, err)
	}
	return date, nil
}
