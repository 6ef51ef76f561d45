package eligibilityController

import (
	"context"
	"fmt"
	"time"
	"wardrobe/config"
	"wardrobe/internal/eligibility"
	. "wardrobe/internal/models"
	"wardrobe/internal/services"
	"wardrobe/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

type EligibilityController struct {
	eligibilityService *services.EligibilityService
	calendar           *utils.Calendar
	Config             config.Config
	log                logger.Logger
}

// Every method takes the evaluation date as YYYY-MM-DD; empty means today in
// the configured timezone.
type EligibilityControllerInterface interface {
	Check(
		ctx context.Context,
		user *User,
		request *services.CheckRequest,
		date string,
	) (*services.CheckResult, error)
	Filter(
		ctx context.Context,
		user *User,
		request *services.FilterRequest,
		date string,
	) (*eligibility.FilterResult, error)
	Rank(
		ctx context.Context,
		user *User,
		request *services.FilterRequest,
		date string,
	) ([]eligibility.ScoredCandidate, error)
	SavedOutfits(ctx context.Context, user *User, date string) (*eligibility.FilterResult, error)
}

func New(services services.Service, config config.Config) EligibilityControllerInterface {
	return &EligibilityController{
		eligibilityService: services.Eligibility,
		calendar:           services.Calendar,
		Config:             config,
		log:                logger.New("eligibilityController"),
	}
}

func (c *EligibilityController) Check(
	ctx context.Context,
	user *User,
	request *services.CheckRequest,
	date string,
) (*services.CheckResult, error) {
	today, err := c.evaluationDate(date)
	if err != nil {
		return nil, err
	}
	return c.eligibilityService.CheckCandidates(ctx, user.ID, *request, today)
}

func (c *EligibilityController) Filter(
	ctx context.Context,
	user *User,
	request *services.FilterRequest,
	date string,
) (*eligibility.FilterResult, error) {
	today, err := c.evaluationDate(date)
	if err != nil {
		return nil, err
	}
	return c.eligibilityService.FilterCandidates(ctx, user.ID, *request, today)
}

func (c *EligibilityController) Rank(
	ctx context.Context,
	user *User,
	request *services.FilterRequest,
	date string,
) ([]eligibility.ScoredCandidate, error) {
	today, err := c.evaluationDate(date)
	if err != nil {
		return nil, err
	}
	return c.eligibilityService.RankCandidates(ctx, user.ID, *request, today)
}

func (c *EligibilityController) SavedOutfits(
	ctx context.Context,
	user *User,
	date string,
) (*eligibility.FilterResult, error) {
	log := c.log.TraceFromContext(ctx).Function("SavedOutfits")

	today, err := c.evaluationDate(date)
	if err != nil {
		return nil, err
	}

	result, err := c.eligibilityService.FilterSavedOutfits(ctx, user.ID, today)
	if err != nil {
		return nil, err
	}

	log.Debug(
		"Saved outfits filtered",
		"userID", user.ID,
		"date", utils.FormatDate(today),
		"eligible", len(result.Eligible),
		"excluded", len(result.Excluded),
	)
	return result, nil
}

func (c *EligibilityController) evaluationDate(date string) (time.Time, error) {
	today, err := c.calendar.DateOrToday(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %v", services.ErrValidation, err)
	}
	return today, nil
}
