package preferenceController

import (
	"context"
	"wardrobe/config"
	. "wardrobe/internal/models"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type PreferenceController struct {
	preferenceService *services.PreferenceService
	Config            config.Config
	log               logger.Logger
}

type PreferenceControllerInterface interface {
	GetNoRepeat(ctx context.Context, user *User) (NoRepeatPolicy, error)
	UpdateNoRepeat(
		ctx context.Context,
		user *User,
		request *services.UpdatePreferenceRequest,
	) (NoRepeatPolicy, error)
	EnsureDefaults(ctx context.Context, user *User) (NoRepeatPolicy, error)
}

func New(services services.Service, config config.Config) PreferenceControllerInterface {
	return &PreferenceController{
		preferenceService: services.Preference,
		Config:            config,
		log:               logger.New("preferenceController"),
	}
}

func (c *PreferenceController) GetNoRepeat(ctx context.Context, user *User) (NoRepeatPolicy, error) {
	return c.preferenceService.Resolve(ctx, user.ID)
}

func (c *PreferenceController) UpdateNoRepeat(
	ctx context.Context,
	user *User,
	request *services.UpdatePreferenceRequest,
) (NoRepeatPolicy, error) {
	log := c.log.TraceFromContext(ctx).Function("UpdateNoRepeat")

	policy, err := c.preferenceService.Update(ctx, user.ID, *request)
	if err != nil {
		return NoRepeatPolicy{}, err
	}

	log.Info("No-repeat preference updated", "userID", user.ID, "days", policy.Days, "mode", policy.Mode)
	return policy, nil
}

// EnsureDefaults creates the default row when missing and returns the
// effective policy either way.
func (c *PreferenceController) EnsureDefaults(ctx context.Context, user *User) (NoRepeatPolicy, error) {
	if err := c.preferenceService.EnsureDefaults(ctx, user.ID); err != nil {
		return NoRepeatPolicy{}, err
	}
	return c.preferenceService.Resolve(ctx, user.ID)
}
