package services

import (
	"context"
	"fmt"
	"time"
	"wardrobe/internal/eligibility"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/internal/validation"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type PolicyResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (models.NoRepeatPolicy, error)
}

// Snapshot is everything the pure engine needs for one evaluation.
type Snapshot struct {
	Policy  models.NoRepeatPolicy
	History []*models.WearEvent
	Today   time.Time
}

func (s *Snapshot) Engine() *eligibility.Engine {
	return eligibility.New(s.Policy, s.History, s.Today)
}

type CheckRequest struct {
	CandidateIDs []uuid.UUID `json:"candidateIds" validate:"required,min=1,max=500"`
}

type CandidateVerdict struct {
	CandidateID uuid.UUID             `json:"candidateId"`
	Eligible    bool                  `json:"eligible"`
	Cooldown    *eligibility.Cooldown `json:"cooldown,omitempty"`
}

type CheckResult struct {
	Policy  models.NoRepeatPolicy `json:"policy"`
	Today   string                `json:"today"`
	Results []CandidateVerdict    `json:"results"`
}

type FilterRequest struct {
	Candidates []eligibility.CandidateOutfit `json:"candidates" validate:"max=500"`
}

type EligibilityService struct {
	preferences  PolicyResolver
	wearRepo     repositories.WearEventRepository
	wardrobeRepo repositories.WardrobeRepository
	validator    *validation.Validator
	db           *gorm.DB
	log          logger.Logger
}

func NewEligibilityService(
	preferences PolicyResolver,
	repos repositories.Repository,
	validator *validation.Validator,
	db *gorm.DB,
) *EligibilityService {
	return &EligibilityService{
		preferences:  preferences,
		wearRepo:     repos.WearEvent,
		wardrobeRepo: repos.Wardrobe,
		validator:    validator,
		db:           db,
		log:          logger.New("eligibilityService"),
	}
}

// Snapshot resolves the policy and loads the wear history it needs. With the
// cooldown disabled no history is read.
func (s *EligibilityService) Snapshot(
	ctx context.Context,
	userID uuid.UUID,
	today time.Time,
) (*Snapshot, error) {
	log := s.log.TraceFromContext(ctx).Function("Snapshot")

	policy, err := s.preferences.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{Policy: policy, Today: models.DateOf(today)}
	if policy.Disabled() {
		return snapshot, nil
	}

	since := eligibility.HistorySince(policy, snapshot.Today)
	history, err := s.wearRepo.ListSince(ctx, s.db, userID, since)
	if err != nil {
		return nil, log.Err("failed to load wear history", err, "userID", userID, "since", since)
	}

	snapshot.History = history
	return snapshot, nil
}

// CheckCandidates reports eligibility for bare item or outfit ids, depending on
// the user's mode. Every id must belong to the user.
func (s *EligibilityService) CheckCandidates(
	ctx context.Context,
	userID uuid.UUID,
	request CheckRequest,
	today time.Time,
) (*CheckResult, error) {
	log := s.log.TraceFromContext(ctx).Function("CheckCandidates")

	if err := s.validator.Validate(request); err != nil {
		return nil, err
	}
	ids := models.UniqueItemIDs(request.CandidateIDs)

	var (
		snapshot    *Snapshot
		itemCount   int64
		outfitCount int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = s.Snapshot(gctx, userID, today)
		return err
	})
	g.Go(func() error {
		var err error
		itemCount, err = s.wardrobeRepo.CountOwnedItems(gctx, s.db, userID, ids)
		return err
	})
	g.Go(func() error {
		var err error
		outfitCount, err = s.wardrobeRepo.CountOwnedOutfits(gctx, s.db, userID, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	owned := itemCount
	if snapshot.Policy.Mode == models.NoRepeatModeOutfit {
		owned = outfitCount
	}
	if owned != int64(len(ids)) {
		return nil, fmt.Errorf(
			"%w: %d of %d candidates are not %ss owned by the user",
			ErrInvalidReference,
			int64(len(ids))-owned,
			len(ids),
			snapshot.Policy.Mode,
		)
	}

	engine := snapshot.Engine()
	results := make([]CandidateVerdict, 0, len(ids))
	for _, id := range ids {
		verdict := CandidateVerdict{CandidateID: id, Eligible: true}
		if cooldown, ok := engine.Cooldown(id); ok {
			verdict.Eligible = false
			verdict.Cooldown = &cooldown
		}
		results = append(results, verdict)
	}

	log.Debug("Candidates checked", "userID", userID, "count", len(results))
	return &CheckResult{
		Policy:  engine.Policy(),
		Today:   engine.Today().Format(time.DateOnly),
		Results: results,
	}, nil
}

func (s *EligibilityService) FilterCandidates(
	ctx context.Context,
	userID uuid.UUID,
	request FilterRequest,
	today time.Time,
) (*eligibility.FilterResult, error) {
	log := s.log.TraceFromContext(ctx).Function("FilterCandidates")

	if err := s.validator.Validate(request); err != nil {
		return nil, err
	}

	snapshot, err := s.Snapshot(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	result := snapshot.Engine().Filter(request.Candidates)
	log.Debug(
		"Candidates filtered",
		"userID", userID,
		"eligible", len(result.Eligible),
		"excluded", len(result.Excluded),
	)
	return &result, nil
}

func (s *EligibilityService) RankCandidates(
	ctx context.Context,
	userID uuid.UUID,
	request FilterRequest,
	today time.Time,
) ([]eligibility.ScoredCandidate, error) {
	if err := s.validator.Validate(request); err != nil {
		return nil, err
	}

	snapshot, err := s.Snapshot(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	return snapshot.Engine().Penalize(request.Candidates), nil
}

// FilterSavedOutfits partitions the user's saved outfits into what can and
// cannot be worn on today.
func (s *EligibilityService) FilterSavedOutfits(
	ctx context.Context,
	userID uuid.UUID,
	today time.Time,
) (*eligibility.FilterResult, error) {
	log := s.log.TraceFromContext(ctx).Function("FilterSavedOutfits")

	var (
		snapshot *Snapshot
		outfits  []*models.Outfit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = s.Snapshot(gctx, userID, today)
		return err
	})
	g.Go(func() error {
		var err error
		outfits, err = s.wardrobeRepo.ListOutfits(gctx, s.db, userID)
		if err != nil {
			return log.Err("failed to list outfits", err, "userID", userID)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make([]eligibility.CandidateOutfit, 0, len(outfits))
	for _, outfit := range outfits {
		candidates = append(candidates, CandidateFromOutfit(outfit))
	}

	result := snapshot.Engine().Filter(candidates)
	return &result, nil
}

func CandidateFromOutfit(outfit *models.Outfit) eligibility.CandidateOutfit {
	id := outfit.ID
	return eligibility.CandidateOutfit{
		OutfitID: &id,
		ItemIDs:  append([]uuid.UUID(nil), outfit.ItemIDs...),
		Label:    outfit.Name,
	}
}
